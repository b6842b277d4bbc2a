package routes

import (
	"net/http"

	"inkwell/auth"
	"inkwell/books"
	"inkwell/favorites"
	"inkwell/live"
	"inkwell/middleware"
	"inkwell/orders"
	"inkwell/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/bookcovers/*filepath", http.Dir("static/bookcovers"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/users/register", rl.Limit(auth.Register))
	router.POST("/api/users/login", rl.Limit(auth.Login))
	router.POST("/api/users/logout", middleware.Authenticate(auth.LogoutUser))
	router.GET("/api/users/profile", middleware.Authenticate(auth.GetProfile))
}

func AddBookRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/books", books.GetBooks)
	router.GET("/api/books/:bookid", books.GetBook)

	admin := middleware.RequireRoles("admin")
	router.POST("/api/books", middleware.Authenticate(admin(books.CreateBook)))
	router.PUT("/api/books/:bookid", middleware.Authenticate(admin(books.EditBook)))
	router.DELETE("/api/books/:bookid", middleware.Authenticate(admin(books.DeleteBook)))
	router.POST("/api/books/:bookid/cover", middleware.Authenticate(admin(books.UploadCover)))
}

func AddFavoriteRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/users/favorites", middleware.Authenticate(favorites.GetFavorites))
	router.POST("/api/users/favorites/:bookid", middleware.Authenticate(favorites.AddFavorite))
	router.DELETE("/api/users/favorites/:bookid", middleware.Authenticate(favorites.RemoveFavorite))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/orders", middleware.Authenticate(orders.GetUserOrders))
	router.POST("/api/orders/create-cod", rl.Limit(middleware.Authenticate(orders.CreateCODOrder)))
	router.PUT("/api/orders/:orderid/cancel", middleware.Authenticate(orders.CancelOrder))
	router.PUT("/api/orders/:orderid/return", middleware.Authenticate(orders.ReturnOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.PrintInvoice))
}

func AddLiveRoutes(router *httprouter.Router) {
	router.GET("/ws/orders", middleware.OptionalAuth(live.OrderFeed))
}
