package books

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /api/books?search=&genre=
func GetBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := BuildBookFilter(r.URL.Query().Get("search"), r.URL.Query().Get("genre"))

	cursor, err := db.BooksCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetBooks find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		log.Println("GetBooks decode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, books)
}

// GET /api/books/:bookid
func GetBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID := ps.ByName("bookid")

	var book models.Book
	err := db.BooksCollection.FindOne(r.Context(), bson.M{"bookid": bookID}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
		return
	} else if err != nil {
		log.Println("GetBook error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch book")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, book)
}

// POST /api/books  (admin)
func CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if book.Title == "" || book.Author == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and author are required")
		return
	}
	if book.Price < 0 || book.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price and stock must be non-negative")
		return
	}

	book.BookID = "b" + utils.GenerateRandomString(10)
	book.CreatedAt = time.Now()
	book.UpdatedAt = time.Now()

	if _, err := db.BooksCollection.InsertOne(r.Context(), book); err != nil {
		log.Println("CreateBook insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create book")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, book)
}

// PUT /api/books/:bookid  (admin)
// Zero-value fields in the payload leave the stored value untouched,
// matching partial-edit semantics of the admin panel.
func EditBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID := ps.ByName("bookid")

	var input models.Book
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Author != "" {
		set["author"] = input.Author
	}
	if input.Genre != "" {
		set["genre"] = input.Genre
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Price > 0 {
		set["price"] = input.Price
	}
	if input.ImageURL != "" {
		set["imageurl"] = input.ImageURL
	}
	if input.Stock > 0 {
		set["stock"] = input.Stock
	}

	result, err := db.BooksCollection.UpdateOne(r.Context(), bson.M{"bookid": bookID}, bson.M{"$set": set})
	if err != nil {
		log.Println("EditBook update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update book")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
		return
	}

	var book models.Book
	if err := db.BooksCollection.FindOne(r.Context(), bson.M{"bookid": bookID}).Decode(&book); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch book")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, book)
}

// DELETE /api/books/:bookid  (admin)
// Past orders hold item snapshots, so deleting a book never touches them.
func DeleteBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID := ps.ByName("bookid")

	result, err := db.BooksCollection.DeleteOne(r.Context(), bson.M{"bookid": bookID})
	if err != nil {
		log.Println("DeleteBook error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Book removed"})
}
