package routes

import (
	"inkwell/middleware"
	"inkwell/payments"
	"inkwell/ratelim"

	"github.com/julienschmidt/httprouter"
)

// AddPayRoutes wires the payment service to the router. The gateway
// configuration is injected here rather than held as package state.
func AddPayRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	payService := payments.NewService(payments.ConfigFromEnv())

	router.POST("/api/payments/create-order", rl.Limit(middleware.Authenticate(payService.CreateGatewayOrder)))
	router.POST("/api/payments/verify", rl.Limit(middleware.Authenticate(payService.VerifyPayment)))
	router.GET("/api/payments/upi-qr/:orderid", middleware.Authenticate(payService.UPIQRCode))
}
