package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// PDFTicketRenderer 以 gofpdf 產生 A4 票券，QR 載荷以 PNG 圖嵌入
type PDFTicketRenderer struct{}

func NewPDFTicketRenderer() TicketRenderer {
	return &PDFTicketRenderer{}
}

func (r *PDFTicketRenderer) Render(ctx context.Context, data TicketData) ([]byte, string, error) {
	qrPNG, err := qrcode.Encode(data.QRPayload, qrcode.Medium, 256)
	if err != nil {
		return nil, "", fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, "Event Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Ticket", data.TicketID},
		{"Event", data.EventName},
		{"Date", data.EventDate.Format("2006-01-02 15:04 MST")},
		{"Location", data.EventLocation},
		{"Price", fmt.Sprintf("%.2f %s", data.Price, strings.ToUpper(data.Currency))},
		{"Attendee", data.AttendeeName},
		{"Email", data.AttendeeEmail},
		{"Issued", data.IssuedAt.Format("2006-01-02 15:04 MST")},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 75, pdf.GetY(), 60, 60, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), "application/pdf", nil
}
