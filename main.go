package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ramesh-vyboina/cluck-credit-tracker/config"
	customerrepo "github.com/ramesh-vyboina/cluck-credit-tracker/customer/repository"
	customersvc "github.com/ramesh-vyboina/cluck-credit-tracker/customer/service"
	api "github.com/ramesh-vyboina/cluck-credit-tracker/handler"
	ledgerrepo "github.com/ramesh-vyboina/cluck-credit-tracker/ledger/repository"
	ledgersvc "github.com/ramesh-vyboina/cluck-credit-tracker/ledger/service"
	"github.com/ramesh-vyboina/cluck-credit-tracker/middleware"
	productrepo "github.com/ramesh-vyboina/cluck-credit-tracker/product/repository"
	productsvc "github.com/ramesh-vyboina/cluck-credit-tracker/product/service"
	"github.com/ramesh-vyboina/cluck-credit-tracker/realtime"
	salerepo "github.com/ramesh-vyboina/cluck-credit-tracker/sale/repository"
	salesvc "github.com/ramesh-vyboina/cluck-credit-tracker/sale/service"
	smssvc "github.com/ramesh-vyboina/cluck-credit-tracker/sms/service"
	supplierrepo "github.com/ramesh-vyboina/cluck-credit-tracker/supplier/repository"
	suppliersvc "github.com/ramesh-vyboina/cluck-credit-tracker/supplier/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	db := setupDatabase(cfg.DB.DSN)

	// repositories + services
	customerService := customersvc.NewCustomerService(customerrepo.NewGormCustomerRepo(db))
	productService := productsvc.NewProductService(productrepo.NewGormProductRepo(db))
	saleService := salesvc.NewSaleService(salerepo.NewGormSaleRepo(db))
	supplierService := suppliersvc.NewSupplierService(supplierrepo.NewGormSupplierRepo(db))
	ledgerService := ledgersvc.NewLedgerService(ledgerrepo.NewGormLedgerRepo(db))

	smsService, err := smssvc.NewFast2SMSService(cfg.SMS.APIKey, cfg.SMS.BaseURL)
	if err != nil {
		log.Fatal("sms configuration error:", err)
	}

	hub := realtime.NewHub()

	customerHandler := api.NewCustomerHandler(customerService)
	productHandler := api.NewProductHandler(productService)
	saleHandler := api.NewSaleHandler(saleService, hub)
	supplierHandler := api.NewSupplierHandler(supplierService)
	ledgerHandler := api.NewLedgerHandler(ledgerService, hub)
	smsHandler := api.NewSMSHandler(smsService)
	wsHandler := api.NewWSHandler(hub)

	r := gin.Default()
	r.Use(gin.Recovery(), middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/customers/", customerHandler.CreateCustomer())
	r.GET("/customers/:id", customerHandler.GetCustomer())
	r.GET("/customers/", customerHandler.ListCustomers())

	r.POST("/products", productHandler.CreateProduct())
	r.GET("/products", productHandler.ListProducts())
	r.PATCH("/products/:id/price", productHandler.UpdatePrice())

	r.POST("/sales", saleHandler.RecordSale())
	r.GET("/sales", saleHandler.ListSales())

	r.POST("/orders", ledgerHandler.RecordOrder())
	r.POST("/payments", ledgerHandler.RecordPayment())

	r.POST("/suppliers", supplierHandler.CreateSupplier())
	r.GET("/suppliers", supplierHandler.ListSuppliers())
	r.POST("/purchases", supplierHandler.RecordPurchase())
	r.GET("/purchases", supplierHandler.ListPurchases())

	r.GET("/clients/:id/statement", ledgerHandler.Statement())
	r.GET("/clients/:id/statement.csv", ledgerHandler.StatementCSV())

	r.POST("/send-transaction-sms", smsHandler.SendTransactionSMS())

	r.GET("/ws", wsHandler.DashboardSocket())

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("server stopped:", err)
	}
}
