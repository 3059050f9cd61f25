// Package main camp-rent API.
//
// @title           camp-rent Mini API
// @version         1.0
// @description     camping-gear rental service (catalog, cart, checkout, tracking, reviews).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer"
	authctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/auth"
	cartctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/cart"
	checkoutctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/checkout"
	notifctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/notification"
	orderctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/order"
	productctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/product"
	rentalctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/rental"
	reviewctrl "github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/controller/review"
	"github.com/PKL-SST-2025/camp-rent-sub000/app/echoServer/validation"
	"github.com/PKL-SST-2025/camp-rent-sub000/config"
	cartrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/cart"
	"github.com/PKL-SST-2025/camp-rent-sub000/repository/gateway"
	notifrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/notification"
	orderrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/order"
	productrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/product"
	rentalrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/rental"
	reviewrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/review"
	userrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/user"
	authsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/auth"
	cartsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/cart"
	checkoutsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/checkout"
	notifsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/notification"
	ordersvc "github.com/PKL-SST-2025/camp-rent-sub000/service/order"
	productsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/product"
	rentalsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/rental"
	reviewsvc "github.com/PKL-SST-2025/camp-rent-sub000/service/review"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string { return uuid.NewString() }

type realClock struct{}

func (c *realClock) Now() time.Time { return time.Now() }

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// storage: single-file key-value store
	st, err := store.OpenBolt(cfg.DataPath)
	if err != nil {
		log.Error("store open failed", "path", cfg.DataPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	// repos
	ur := userrepo.New(st)
	pr := productrepo.New(st)
	cr := cartrepo.New(st)
	or := orderrepo.New(st)
	rr := rentalrepo.New(st)
	vr := reviewrepo.New(st)
	nr := notifrepo.New(st)

	// payment gateway: real endpoint when configured, simulator otherwise
	var gw gateway.Gateway
	if cfg.GatewayURL != "" {
		gw = gateway.NewHTTP(cfg.GatewayURL, cfg.GatewayKey)
	} else {
		gw = gateway.NewSimulator()
	}

	idGen := &uuidGenerator{}
	clock := &realClock{}

	// services
	as := authsvc.New(ur, cfg.JWTSecret, idGen, clock)
	ps := productsvc.New(pr)
	cs := cartsvc.New(cr)
	ks := checkoutsvc.New(st, cr, or, rr, nr, gw, idGen, clock)
	oss := ordersvc.New(or)
	rls := rentalsvc.New(rr)
	vs := reviewsvc.New(vr, or, clock)
	nts := notifsvc.New(nr)

	if err := ps.Seed(ctx); err != nil {
		log.Error("catalog seed failed", "err", err)
		os.Exit(1)
	}

	// stale reset tokens are purged on boot
	if purged, err := authsvc.NewCleaner(ur, clock).PurgeStaleReset(ctx); err != nil {
		log.Warn("reset token purge failed", "err", err)
	} else if purged {
		log.Info("stale reset token purged")
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	productC := &productctrl.Controller{Svc: ps, V: v, Log: log}
	cartC := &cartctrl.Controller{Svc: cs, V: v, Log: log}
	checkoutC := &checkoutctrl.Controller{Svc: ks, Log: log}
	orderC := &orderctrl.Controller{Svc: oss, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rls, Log: log}
	reviewC := &reviewctrl.Controller{Svc: vs, V: v, Log: log}
	notifC := &notifctrl.Controller{Svc: nts, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		Product:      productC,
		Cart:         cartC,
		Checkout:     checkoutC,
		Order:        orderC,
		Rental:       rentalC,
		Review:       reviewC,
		Notification: notifC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
