package csvfeed

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"flowerex/pkg/engine/model"
	"flowerex/pkg/logging"
)

// input columns: clientOrderId, instrument, side, quantity, price
const orderFieldCount = 5

// Reader turns a delimited order file into well-typed orders. Records that
// cannot be parsed are skipped with a warning; semantic validation is the
// engine's job, not the reader's.
type Reader struct {
	log *logging.Logger
}

func NewReader(log *logging.Logger) *Reader {
	return &Reader{log: log}
}

func (r *Reader) ReadFile(ctx context.Context, path string) ([]*model.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.Read(ctx, f)
}

func (r *Reader) Read(ctx context.Context, src io.Reader) ([]*model.Order, error) {
	buffered := bufio.NewReader(src)
	stripBOM(buffered)

	cr := csv.NewReader(buffered)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var orders []*model.Order
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			r.log.Warn(ctx, "skipping unreadable record", zap.Int("line", line), zap.Error(err))
			continue
		}

		order, err := parseRecord(record)
		if err != nil {
			r.log.Warn(ctx, "skipping unparseable record", zap.Int("line", line), zap.Error(err))
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// stripBOM discards a leading UTF-8 byte order mark if present.
func stripBOM(r *bufio.Reader) {
	bom, err := r.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = r.Discard(3)
	}
}

func parseRecord(record []string) (*model.Order, error) {
	if len(record) != orderFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", orderFieldCount, len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	side, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("side: %w", err)
	}
	quantity, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	price, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	return &model.Order{
		ClientOrderID: record[0],
		Instrument:    record[1],
		Side:          model.Side(side),
		Quantity:      quantity,
		Price:         price,
	}, nil
}
