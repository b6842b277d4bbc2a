package books

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const coverDir = "static/bookcovers"
const maxCoverBytes = 8 << 20

// POST /api/books/:bookid/cover  (admin)
// Accepts a multipart "cover" image, stores a 600px-wide copy plus a
// 200px thumbnail, and points the book's imageUrl at the stored copy.
func UploadCover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookID := ps.ByName("bookid")

	var book models.Book
	err := db.BooksCollection.FindOne(r.Context(), bson.M{"bookid": bookID}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Book not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch book")
		return
	}

	if err := r.ParseMultipartForm(maxCoverBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cover image is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	if err := utils.EnsureDir(coverDir); err != nil {
		log.Println("UploadCover mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store cover")
		return
	}

	resized := imaging.Resize(img, 600, 0, imaging.Lanczos) // maintain aspect ratio
	thumb := imaging.Resize(img, 200, 0, imaging.Lanczos)

	coverPath := filepath.Join(coverDir, bookID+".jpg")
	thumbPath := filepath.Join(coverDir, bookID+"_thumb.jpg")

	if err := imaging.Save(resized, coverPath, imaging.JPEGQuality(85)); err != nil {
		log.Println("UploadCover save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store cover")
		return
	}
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(80)); err != nil {
		log.Println("UploadCover thumb save error:", err)
	}

	imageURL := fmt.Sprintf("/static/bookcovers/%s.jpg", bookID)
	_, err = db.BooksCollection.UpdateOne(r.Context(), bson.M{"bookid": bookID}, bson.M{
		"$set": bson.M{"imageurl": imageURL, "updated_at": time.Now()},
	})
	if err != nil {
		log.Println("UploadCover update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update book")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
