package echoServer

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/auth"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/cart"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/checkout"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/notification"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/order"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/product"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/rental"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/review"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/jwtx"
)

type C struct {
	Auth         *auth.Controller
	Product      *product.Controller
	Cart         *cart.Controller
	Checkout     *checkout.Controller
	Order        *order.Controller
	Rental       *rental.Controller
	Review       *review.Controller
	Notification *notification.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.POST("/users/reset-token", c.Auth.RequestReset)
	pub.POST("/users/reset-password", c.Auth.ResetPassword)

	pub.GET("/products", c.Product.List)
	pub.GET("/products/:id", c.Product.Detail)
	pub.GET("/products/:id/reviews", c.Review.List)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),
	}))
	// user_id / user_name extraction for downstream handlers
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			if name, err := jwtx.NameFromContext(ctx); err == nil {
				ctx.Set("user_name", name)
			}
			return next(ctx)
		}
	})

	auth.POST("/users/logout", c.Auth.Logout)
	auth.GET("/users/me", c.Auth.Me)

	// Admin-ish catalog maintenance
	auth.POST("/products", c.Product.Create)

	// Cart
	auth.GET("/cart", c.Cart.List)
	auth.POST("/cart/items", c.Cart.Add)
	auth.PATCH("/cart/items/:id", c.Cart.UpdateQuantity)
	auth.DELETE("/cart/items/:id", c.Cart.Remove)
	auth.PUT("/cart/selection", c.Cart.Select)

	// Checkout wizard
	auth.POST("/checkout/validate", c.Checkout.Validate)
	auth.GET("/checkout/quote", c.Checkout.Quote)
	auth.POST("/checkout", c.Checkout.Submit)

	// Orders & receipt
	auth.GET("/orders", c.Order.History)
	auth.GET("/orders/current", c.Order.Current)

	// Rental tracking
	auth.GET("/rentals", c.Rental.History)
	auth.GET("/rentals/:id", c.Rental.Track)
	auth.POST("/rentals/:id/advance", c.Rental.Advance)

	// Reviews
	auth.POST("/products/:id/reviews", c.Review.Submit)

	// Notifications
	auth.GET("/notifications", c.Notification.List)
	auth.DELETE("/notifications", c.Notification.Clear)
}
