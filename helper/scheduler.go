package helper

import (
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	archiveScheduler     *cron.Cron
	maintenanceScheduler gocron.Scheduler
)

func StartArchiveScheduler() {
	archiveScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := archiveScheduler.AddFunc("0 3 * * *", runArchive)
	if err != nil {
		log.Printf("Archive scheduler init failed: %v", err)
		return
	}

	archiveScheduler.Start()
	log.Println("Archive scheduler started (daily 03:00)")
}

func runArchive() {
	log.Println("[CRON] archive stale orders triggered")
	result, err := ArchiveStaleOrders(database.DB, time.Now(), config.Int("ARCHIVE_AFTER_DAYS", 30))
	if err != nil {
		log.Printf("Archive sweep failed: %v", err)
		return
	}
	if result.Archived > 0 {
		ReconcileAfterMutation()
	}
}

func StopArchiveScheduler() {
	if archiveScheduler != nil {
		archiveScheduler.Stop()
		log.Println("Archive scheduler stopped")
	}
}

// StartMaintenanceScheduler runs the seating count reconciliation every ten
// minutes and mails the daily report at 23:55.
func StartMaintenanceScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	maintenanceScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(ReconcileAfterMutation),
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(SendDailyReport),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Maintenance scheduler started (reconcile every 10m, report 23:55)")
}

func StopMaintenanceScheduler() {
	if maintenanceScheduler != nil {
		if err := maintenanceScheduler.Shutdown(); err != nil {
			log.Printf("Maintenance scheduler shutdown: %v", err)
		}
	}
}

func ReconcileAfterMutation() {
	corrected, err := ReconcileSeatingTypeCounts(database.DB)
	if err != nil {
		log.Printf("Reconcile seating counts failed: %v", err)
		return
	}
	if corrected > 0 {
		log.Printf("Reconciled %d seating type counts", corrected)
	}
}

// SendDailyReport mails today's statistics workbook to REPORT_EMAIL.
func SendDailyReport() {
	to := config.Config("REPORT_EMAIL")
	if to == "" {
		return
	}
	now := time.Now()
	report, err := LoadStatistics(database.DB, PeriodToday, now)
	if err != nil {
		log.Printf("Daily report statistics failed: %v", err)
		return
	}
	file, err := utils.BuildStatisticsWorkbook(*report)
	if err != nil {
		log.Printf("Daily report workbook failed: %v", err)
		return
	}
	data, err := utils.WorkbookBytes(file)
	if err != nil {
		log.Printf("Daily report workbook failed: %v", err)
		return
	}
	day := now.Format("2006-01-02")
	err = utils.SendReportMail(utils.ReportMail{
		To:      to,
		Subject: "Kunlik hisobot " + day,
		HTMLBody: fmt.Sprintf("<p>Buyurtmalar: <b>%d</b><br>Tushum: <b>%d so'm</b><br>To'langan: %d, to'lanmagan: %d</p>",
			report.Current.OrderCount, report.Current.Revenue, report.Current.PaidCount, report.Current.UnpaidCount),
		AttachmentName: "hisobot-" + day + ".xlsx",
		Attachment:     data,
	})
	if err != nil {
		log.Printf("Daily report mail failed: %v", err)
		return
	}
	log.Printf("Daily report sent to %s", to)
}
