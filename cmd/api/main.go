package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "kpisuite-backend/internal/adapter/http"
	appmw "kpisuite-backend/internal/adapter/middleware"
	"kpisuite-backend/internal/adapter/repository/mysql"
	"kpisuite-backend/internal/auth"
	"kpisuite-backend/internal/config"
	"kpisuite-backend/internal/infrastructure/cache"
	"kpisuite-backend/internal/infrastructure/db"
	evidenceuc "kpisuite-backend/internal/usecase/evidence"
	kpiuc "kpisuite-backend/internal/usecase/kpi"
	orgunituc "kpisuite-backend/internal/usecase/orgunit"
	perioduc "kpisuite-backend/internal/usecase/period"
	submissionuc "kpisuite-backend/internal/usecase/submission"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, 5*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	// repositories + unit of work
	subRepo := mysql.NewSubmissionRepository(gdb)
	apprRepo := mysql.NewApprovalRepository(gdb)
	evidRepo := mysql.NewEvidenceRepository(gdb)
	defRepo := mysql.NewKPIDefinitionRepository(gdb)
	targetRepo := mysql.NewKPITargetRepository(gdb)
	actualRepo := mysql.NewKPIActualRepository(gdb)
	orgRepo := mysql.NewOrgUnitRepository(gdb)
	periodRepo := mysql.NewPeriodRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	// auth
	tm := auth.NewTokenManager(
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.AccessTTLSecs)*time.Second,
		time.Duration(cfg.RefreshTTLSecs)*time.Second,
		auth.NewRedisRefreshStore(rdb),
	)

	// use cases
	subUC := submissionuc.NewUsecase(subRepo, apprRepo, evidRepo, orgRepo, txm)
	evidUC := evidenceuc.NewUsecase(subRepo, evidRepo, evidenceuc.DiskStore{Dir: cfg.EvidenceDir})
	kpiUC := kpiuc.NewUsecase(defRepo, targetRepo, actualRepo, subRepo, txm)
	orgUC := orgunituc.NewUsecase(orgRepo)
	periodUC := perioduc.NewUsecase(periodRepo)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(tm, cfg.IssuerKey)
	subH := httpadp.NewSubmissionHandler(subUC)
	apprH := httpadp.NewApprovalHandler(subUC)
	evidH := httpadp.NewEvidenceHandler(evidUC)
	kpiH := httpadp.NewKPIHandler(kpiUC)
	orgH := httpadp.NewOrgUnitHandler(orgUC)
	periodH := httpadp.NewPeriodHandler(periodUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// public routes
	e.GET("/health", h.Health)
	e.POST("/auth/token", authH.IssueToken)
	e.POST("/auth/refresh", authH.RefreshToken)

	// authenticated routes; idempotency guards the mutating ones
	api := e.Group("", appmw.Auth(tm), appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.GET("/submissions", subH.ListSubmissions)
	api.GET("/submissions/:submission_id", subH.GetSubmission)
	api.PATCH("/submissions/:submission_id/status", subH.UpdateSubmissionStatus)

	api.GET("/submissions/:submission_id/approvals", apprH.ListApprovals)
	api.PATCH("/approvals/:approval_id/status", apprH.DecideApproval)

	api.POST("/submissions/:submission_id/evidence", evidH.UploadEvidence)
	api.GET("/submissions/:submission_id/evidence", evidH.ListEvidence)

	api.POST("/kpi/definitions", kpiH.CreateDefinition)
	api.GET("/kpi/definitions", kpiH.ListDefinitions)
	api.GET("/kpi/definitions/:definition_id", kpiH.GetDefinition)
	api.PUT("/submissions/:submission_id/targets", kpiH.BulkUpsertTargets)
	api.PUT("/submissions/:submission_id/actuals/:definition_id", kpiH.UpsertActual)

	api.GET("/org-units/:org_unit_id", orgH.GetOrgUnit)
	api.GET("/org-units/:org_unit_id/children", orgH.ListChildren)
	api.GET("/org-units/:org_unit_id/ancestors", orgH.GetAncestors)

	api.GET("/periods", periodH.ListPeriods)
	api.GET("/periods/:period_id", periodH.GetPeriod)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
