package auth

import (
	"context"
	"net/http"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func profileHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		sendError(w, http.StatusNotFound, "User not found")
		return
	}

	orderCount, err := db.OrdersCollection.CountDocuments(context.TODO(), bson.M{"userid": userID})
	if err != nil {
		orderCount = 0
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserProfileResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin(),
		CreatedAt:     user.CreatedAt,
		OrderCount:    orderCount,
		FavoriteCount: len(user.Favorites),
	})
}
