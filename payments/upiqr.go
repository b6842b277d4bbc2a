package payments

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /api/payments/upi-qr/:orderid — PNG QR for paying the order over UPI.
func (s *Service) UPIQRCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		log.Println("UPIQRCode find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	if order.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized for this order")
		return
	}

	upiURL := fmt.Sprintf("upi://pay?pa=%s&pn=Inkwell&am=%.2f&cu=INR&tn=%s",
		url.QueryEscape(s.upiVPA), order.TotalAmount, url.QueryEscape("Order "+order.OrderID))

	png, err := qrcode.Encode(upiURL, qrcode.Medium, 256)
	if err != nil {
		log.Println("UPIQRCode encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
