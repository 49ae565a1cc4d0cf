package plantreceipt

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

// VoucherPrintData carries everything the printed voucher shows. Product
// and supplier names are resolved before rendering; the PDF layer never
// touches the API.
type VoucherPrintData struct {
	VoucherNo    string
	Date         string
	SupplierName string
	AgencyName   string
	Lines        []VoucherPrintLine
	SubTotal     float64
	TaxTotal     float64
	Rounding     float64
	GrandTotal   float64
}

type VoucherPrintLine struct {
	ProductName string
	Quantity    float64
	UnitPrice   float64
	TaxRate     float64
	Amount      float64
}

func renderVoucherPDF(data VoucherPrintData) ([]byte, error) {
	if data.VoucherNo == "" {
		return nil, fmt.Errorf("voucher number is required for printing")
	}

	barcodePNG, err := renderCode128PNG(data.VoucherNo, 900, 180)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Plant Receipt Voucher", false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	margin := 14.0
	contentW := pageW - 2*margin
	pdf.SetMargins(margin, margin, margin)

	agency := data.AgencyName
	if agency == "" {
		agency = "Gas Agency"
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, agency, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "PLANT RECEIPT VOUCHER", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW/2, 6, "Voucher No: "+data.VoucherNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Date: "+data.Date, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Supplier: "+data.SupplierName, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	colW := []float64{contentW * 0.40, contentW * 0.12, contentW * 0.16, contentW * 0.12, contentW * 0.20}
	heads := []string{"Product", "Qty", "Unit Price", "Tax %", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, head := range heads {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colW[i], 7, head, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range data.Lines {
		pdf.CellFormat(colW[0], 7, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 7, trimFloat(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 7, money(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 7, trimFloat(line.TaxRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 7, money(line.Amount), "1", 1, "R", false, 0, "")
	}

	labelW := colW[0] + colW[1] + colW[2] + colW[3]
	totalRow := func(label string, value float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 7, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 7, money(value), "1", 1, "R", false, 0, "")
	}
	totalRow("Sub Total", data.SubTotal, false)
	totalRow("Tax Total", data.TaxTotal, false)
	totalRow("Rounding", data.Rounding, false)
	totalRow("Grand Total", data.GrandTotal, true)

	pdf.Ln(8)
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "voucher-barcode-" + data.VoucherNo
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	imgW := 90.0
	imgH := 18.0
	x := (pageW - imgW) / 2
	pdf.ImageOptions(imageName, x, pdf.GetY(), imgW, imgH, false, opt, 0, "")
	pdf.SetY(pdf.GetY() + imgH + 2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, data.VoucherNo, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var out bytes.Buffer
	if err := png.Encode(&out, normalized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
