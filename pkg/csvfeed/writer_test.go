package csvfeed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"flowerex/pkg/engine/model"
	"flowerex/pkg/logging"
)

func TestWriteReports(t *testing.T) {
	ts := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)
	reports := []*model.ExecutionReport{
		{
			OrderID:       "ORD1",
			ClientOrderID: "aa1",
			Instrument:    "Rose",
			Side:          model.SideBuy,
			Status:        model.StatusNew,
			Quantity:      100,
			Price:         55,
			TransactTime:  ts,
		},
		{
			OrderID:       "ORD2",
			ClientOrderID: "aa2",
			Instrument:    "Rose",
			Side:          model.SideSell,
			Status:        model.StatusRejected,
			Reason:        "Invalid Size",
			Quantity:      55,
			Price:         12.5,
			TransactTime:  ts,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(logging.NewLogger(logging.ERROR))
	if err := w.Write(&buf, reports); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "OrderID,ClientOrderID,Instrument,Side,Status,Reason,Quantity,Price,TransactionTime" {
		t.Errorf("bad header: %s", lines[0])
	}
	if lines[1] != "ORD1,aa1,Rose,1,New,,100,55,20241001-093000" {
		t.Errorf("bad first row: %s", lines[1])
	}
	if lines[2] != "ORD2,aa2,Rose,2,Rejected,Invalid Size,55,12.5,20241001-093000" {
		t.Errorf("bad second row: %s", lines[2])
	}
}

func TestReportFileName(t *testing.T) {
	ts := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)
	if got := ReportFileName(ts); got != "execution_report_20241001-093000.csv" {
		t.Errorf("bad file name: %s", got)
	}
}
