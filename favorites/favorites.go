package favorites

import (
	"context"
	"log"
	"net/http"
	"time"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/users/favorites
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	books := []models.Book{}
	if len(user.Favorites) > 0 {
		cursor, err := db.BooksCollection.Find(ctx, bson.M{"bookid": bson.M{"$in": user.Favorites}})
		if err != nil {
			log.Println("GetFavorites find error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch favorites")
			return
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &books); err != nil {
			log.Println("GetFavorites decode error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch favorites")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, books)
}

// POST /api/users/favorites/:bookid
// $addToSet keeps the favorites list a set; re-adding is a no-op.
func AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	bookID := ps.ByName("bookid")

	err := db.BooksCollection.FindOne(r.Context(), bson.M{"bookid": bookID}).Err()
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
		return
	}

	_, err = db.UserCollection.UpdateOne(r.Context(),
		bson.M{"userid": userID},
		bson.M{"$addToSet": bson.M{"favorites": bookID}},
	)
	if err != nil {
		log.Println("AddFavorite update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Book added to favorites"})
}

// DELETE /api/users/favorites/:bookid
func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	bookID := ps.ByName("bookid")

	_, err := db.UserCollection.UpdateOne(r.Context(),
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"favorites": bookID}},
	)
	if err != nil {
		log.Println("RemoveFavorite update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Book removed from favorites"})
}
