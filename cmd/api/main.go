package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/leave-import-go/internal/config"
	appHTTP "github.com/cmlabs-hris/leave-import-go/internal/handler/http"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/database"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/storage"
	"github.com/cmlabs-hris/leave-import-go/internal/repository/postgresql"
	leaveImportService "github.com/cmlabs-hris/leave-import-go/internal/service/leaveimport"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveImportRepo := postgresql.NewLeaveImportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	importService := leaveImportService.NewImportService(db, leaveImportRepo, employeeRepo)
	reader := spreadsheet.NewReader(leaveImportService.ResolveHeader)

	leaveImportHandler := appHTTP.NewLeaveImportHandler(importService, reader, fileStorage, cfg.Import.MaxUploadBytes)

	router := appHTTP.NewRouter(JWTService, leaveImportHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
