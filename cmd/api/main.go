package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/storemate/storemate-backend-go/internal/config"
	appHTTP "github.com/storemate/storemate-backend-go/internal/handler/http"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
	"github.com/storemate/storemate-backend-go/internal/pkg/jwt"
	"github.com/storemate/storemate-backend-go/internal/pkg/oauth"
	"github.com/storemate/storemate-backend-go/internal/repository/postgresql"
	attendanceService "github.com/storemate/storemate-backend-go/internal/service/attendance"
	authService "github.com/storemate/storemate-backend-go/internal/service/auth"
	employeeService "github.com/storemate/storemate-backend-go/internal/service/employee"
	feedbackService "github.com/storemate/storemate-backend-go/internal/service/feedback"
	orderService "github.com/storemate/storemate-backend-go/internal/service/order"
	productService "github.com/storemate/storemate-backend-go/internal/service/product"
	reportService "github.com/storemate/storemate-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.Local
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, cfg.QR.Issuer)
	productSvc := productService.NewProductService(productRepo)
	orderSvc := orderService.NewOrderService(db, orderRepo, productRepo)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepo)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo, loc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Product:    appHTTP.NewProductHandler(productSvc),
		Order:      appHTTP.NewOrderHandler(orderSvc),
		Feedback:   appHTTP.NewFeedbackHandler(feedbackSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
