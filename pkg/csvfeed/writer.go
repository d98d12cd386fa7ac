package csvfeed

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"flowerex/pkg/engine/model"
	"flowerex/pkg/logging"
)

// TimestampLayout is the wire format of transaction times and of the
// report file name.
const TimestampLayout = "20060102-150405"

var reportHeader = []string{
	"OrderID", "ClientOrderID", "Instrument", "Side",
	"Status", "Reason", "Quantity", "Price", "TransactionTime",
}

type Writer struct {
	log *logging.Logger
}

func NewWriter(log *logging.Logger) *Writer {
	return &Writer{log: log}
}

// WriteFile writes the reports to a timestamped file under dir and returns
// the file's path.
func (w *Writer) WriteFile(ctx context.Context, dir string, ts time.Time, reports []*model.ExecutionReport) (string, error) {
	path := filepath.Join(dir, ReportFileName(ts))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := w.Write(f, reports); err != nil {
		return "", err
	}

	w.log.Info(ctx, "execution report written",
		zap.String("path", path),
		zap.Int("reports", len(reports)))
	return path, nil
}

func (w *Writer) Write(dst io.Writer, reports []*model.ExecutionReport) error {
	cw := csv.NewWriter(dst)

	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.OrderID,
			r.ClientOrderID,
			r.Instrument,
			strconv.Itoa(int(r.Side)),
			string(r.Status),
			r.Reason,
			strconv.FormatInt(r.Quantity, 10),
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			r.TransactTime.Format(TimestampLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ReportFileName(ts time.Time) string {
	return "execution_report_" + ts.Format(TimestampLayout) + ".csv"
}
