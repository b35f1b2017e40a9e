package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/cpmech/gosl/chk"
)

func workedInput(tst *testing.T) Input {
	b, _ := beam.NewBeam(10)
	b.AddPointLoad(1000, 3)
	b.AddDistributedLoad(500, 6, 10)
	r, err := b.Reactions()
	if err != nil {
		tst.Fatal(err)
	}
	samples, err := b.SampleDiagram(101)
	if err != nil {
		tst.Fatal(err)
	}
	return Input{
		Project:   "test",
		Author:    "gobeam",
		Date:      time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Beam:      b,
		Reactions: r,
		Samples:   samples,
	}
}

func Test_pdf01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pdf01. report")

	in := workedInput(tst)

	pdf, err := New(in)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(pdf.PageCount(), 2)

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		tst.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		tst.Fatalf("not a pdf")
	}

	path := filepath.Join(tst.TempDir(), "report.pdf")
	if err := Save(path, in); err != nil {
		tst.Fatal(err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		tst.Fatalf("report not written: %v", err)
	}
}

func Test_pdf02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pdf02. missing samples")

	in := workedInput(tst)
	in.Samples = nil
	if _, err := New(in); err == nil {
		tst.Fatalf("expected error without samples")
	}
}
