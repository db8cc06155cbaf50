package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "trustlend-backend/internal/adapter/http"
	"trustlend-backend/internal/adapter/middleware"
	"trustlend-backend/internal/adapter/repository/mysql"
	"trustlend-backend/internal/config"
	"trustlend-backend/internal/infrastructure/cache"
	"trustlend-backend/internal/infrastructure/db"
	"trustlend-backend/internal/infrastructure/document"
	"trustlend-backend/internal/infrastructure/payment"
	"trustlend-backend/internal/scheduler"
	accountuc "trustlend-backend/internal/usecase/account"
	contractuc "trustlend-backend/internal/usecase/contract"
	endorsementuc "trustlend-backend/internal/usecase/endorsement"
	notificationuc "trustlend-backend/internal/usecase/notification"
	offeruc "trustlend-backend/internal/usecase/offer"
	originationuc "trustlend-backend/internal/usecase/origination"
	settlementuc "trustlend-backend/internal/usecase/settlement"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	if err := db.Migrate(gdb); err != nil {
		log.WithError(err).Fatal("migrations failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	tx := mysql.NewGormUoW(gdb)
	docs := document.NewService()
	gateway := payment.NewGateway(cfg.CheckoutBaseURL)

	contracts := contractuc.NewUsecase(tx, docs, gateway)
	settle := settlementuc.NewUsecase(tx, log)

	accountH := httpadp.NewAccountHandler(accountuc.NewUsecase(tx))
	endorseH := httpadp.NewEndorsementHandler(endorsementuc.NewUsecase(tx))
	offerH := httpadp.NewOfferHandler(offeruc.NewUsecase(tx))
	requestH := httpadp.NewLoanRequestHandler(originationuc.NewUsecase(tx, contracts))
	contractH := httpadp.NewContractHandler(contracts)
	paymentH := httpadp.NewPaymentHandler(settle)
	notifH := httpadp.NewNotificationHandler(notificationuc.NewUsecase(tx))
	h := httpadp.NewHandler()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(tx, settle, log)
	sched.ReceiptSweepEvery = cfg.ReceiptSweepEvery
	sched.DefaultSweepEvery = cfg.DefaultSweepEvery
	sched.ReceiptTimeout = cfg.ReceiptTimeout
	go sched.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, log, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/healthz", h.Health)

	e.POST("/accounts", accountH.Register)
	e.GET("/accounts/:account_id", accountH.Get)
	e.GET("/accounts/:account_id/score-history", accountH.ScoreHistory)
	e.GET("/accounts/:account_id/endorsers", endorseH.Endorsers)

	e.POST("/endorsements", endorseH.Endorse)
	e.DELETE("/endorsements/:receiver_id", endorseH.Unendorse)

	e.POST("/offers", offerH.Create)
	e.GET("/offers", offerH.ListMine)
	e.PATCH("/offers/:offer_id", offerH.Update)
	e.DELETE("/offers/:offer_id", offerH.Delete)

	e.POST("/loan-requests", requestH.Create)
	e.POST("/loan-requests/:request_id/guarantor", requestH.RequestGuarantor)
	e.POST("/guarantor-requests/:guarantor_request_id/respond", requestH.RespondToGuarantorRequest)
	e.POST("/loan-requests/:request_id/accept", requestH.Accept)
	e.GET("/lender/inbox", requestH.Inbox)

	e.GET("/contracts/:contract_id", contractH.Get)
	e.POST("/contracts/:contract_id/sign", contractH.Sign)
	e.POST("/contracts/:contract_id/disbursal", contractH.ConfirmDisbursal)
	e.GET("/contracts/:contract_id/disbursal-proof", contractH.DisbursalProof)
	e.POST("/contracts/:contract_id/receipt", contractH.ConfirmReceipt)
	e.POST("/contracts/:contract_id/repayment", contractH.InitiateRepayment)
	e.POST("/contracts/:contract_id/guarantor-payment", contractH.GuarantorPay)

	e.POST("/payments/callback", paymentH.Callback)

	e.GET("/notifications", notifH.List)
	e.POST("/notifications/:notification_id/read", notifH.MarkRead)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown")
		}
	}()

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Info("server stopped")
	}
}
