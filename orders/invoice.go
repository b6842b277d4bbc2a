package orders

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var invoiceSecret = []byte(func() string {
	if s := os.Getenv("INVOICE_SECRET"); s != "" {
		return s
	}
	return "invoice-signing-secret"
}())

// invoiceQRPayload returns orderID|userID|timestamp|signature so a scanned
// invoice can be checked for tampering.
func invoiceQRPayload(orderID, userID string) string {
	data := fmt.Sprintf("%s|%s|%d", orderID, userID, time.Now().Unix())

	h := hmac.New(sha256.New, invoiceSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/orders/:orderid/invoice — owner-only PDF invoice.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID := ps.ByName("orderid")

	var order models.Order
	err := db.OrdersCollection.FindOne(r.Context(), bson.M{"orderid": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		log.Println("PrintInvoice find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	if order.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized for this order")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Inkwell Bookstore")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice for order %s", order.OrderID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", order.OrderStatus))
	pdf.Ln(12)

	// Line items
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Title", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Author", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, item.Author, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Verification QR
	png, err := qrcode.Encode(invoiceQRPayload(order.OrderID, order.UserID), qrcode.Medium, 256)
	if err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("invoice-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("invoice-qr", 15, pdf.GetY(), 40, 40, false, opts, 0, "")
	} else {
		log.Println("PrintInvoice QR error:", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintInvoice PDF error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderID))
	w.Write(buf.Bytes())
}
