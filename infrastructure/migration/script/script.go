package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/migrations"
	"github.com/vfg2006/campaign-control-api/internal/config"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@agencia.com"
	adminPassword = "Admin@123"
)

var brandNames = []string{
	"TechCorp", "FashionForward", "FoodieDelight", "SportsMax", "HomeStyle",
	"BeautyGlow", "AutoDrive", "TravelWise", "HealthPlus", "EduSmart",
}

type campaignType struct {
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
}

var campaignTypes = []campaignType{
	{"Brand Awareness", decimal.NewFromInt(200), decimal.NewFromInt(5000)},
	{"Lead Generation", decimal.NewFromInt(150), decimal.NewFromInt(3000)},
	{"Product Launch", decimal.NewFromInt(300), decimal.NewFromInt(8000)},
	{"Seasonal Sale", decimal.NewFromInt(100), decimal.NewFromInt(2000)},
	{"Retargeting", decimal.NewFromInt(75), decimal.NewFromInt(1500)},
}

var seedStatuses = []domain.CampaignStatus{
	domain.CampaignStatusActive,
	domain.CampaignStatusPaused,
	domain.CampaignStatusDraft,
}

var spendDescriptions = []string{
	"Google Ads spend",
	"Facebook Ads spend",
	"Display advertising",
	"Search advertising",
	"Social media advertising",
	"Retargeting campaign",
	"Influencer marketing",
	"Video advertising",
}

type window struct {
	Start string
	End   string
}

var (
	businessHours = []window{{"09:00", "17:00"}, {"08:00", "18:00"}, {"10:00", "16:00"}}
	extendedHours = []window{{"06:00", "22:00"}, {"00:00", "23:59"}}
)

type seededCampaign struct {
	ID          string
	Name        string
	DailyBudget decimal.Decimal
}

func randomAmount(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + rand.Float64()*(hi-lo)).Round(2)
}

func insertBrands(tx *sql.Tx, count int) []string {
	if count > len(brandNames) {
		count = len(brandNames)
	}
	logrus.Infof("Iniciando inserção de %d marcas...", count)
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO brands (id, name, description, is_active) VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`)
	if err != nil {
		logrus.Fatalf("ERRO ao preparar statement para brands: %v", err)
	}
	defer stmt.Close()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.Fatalf("ERRO ao gerar id: %v", err)
		}

		name := brandNames[i]
		description := fmt.Sprintf("Leading %s company with innovative products and services.", strings.ToLower(name))

		var stored string
		if err := stmt.QueryRow(id, name, description).Scan(&stored); err != nil {
			logrus.Errorf("ERRO ao inserir marca [%d/%d] %s: %v", i+1, count, name, err)
			continue
		}
		ids = append(ids, stored)
	}

	logrus.Infof("Inserção de marcas concluída em %v. Sucesso: %d", time.Since(startTime), len(ids))
	return ids
}

func insertCampaigns(tx *sql.Tx, brandIDs []string, perBrand int, today time.Time) []seededCampaign {
	logrus.Infof("Iniciando inserção de %d campanhas por marca...", perBrand)
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO campaigns
		(id, brand_id, name, status, daily_budget, monthly_budget, daily_spend, monthly_spend, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (brand_id, name) DO NOTHING`)
	if err != nil {
		logrus.Fatalf("ERRO ao preparar statement para campaigns: %v", err)
	}
	defer stmt.Close()

	brandNamesByID := make(map[string]string, len(brandIDs))
	for i, id := range brandIDs {
		brandNamesByID[id] = brandNames[i]
	}

	var campaigns []seededCampaign
	errorCount := 0

	for _, brandID := range brandIDs {
		for i := 0; i < perBrand; i++ {
			kind := campaignTypes[i%len(campaignTypes)]
			status := seedStatuses[i%len(seedStatuses)]

			dailySpend, monthlySpend := decimal.Zero, decimal.Zero
			switch status {
			case domain.CampaignStatusActive:
				if rand.Intn(2) == 0 {
					dailySpend = randomAmount(10, kind.DailyBudget.InexactFloat64()*0.8)
					monthlySpend = randomAmount(100, kind.MonthlyBudget.InexactFloat64()*0.7)
				}
			case domain.CampaignStatusPaused:
				// pausadas por estouro de orçamento
				dailySpend = kind.DailyBudget.Add(randomAmount(1, 50))
				monthlySpend = kind.MonthlyBudget.Add(randomAmount(10, 500))
			}

			startDate := today.AddDate(0, 0, -rand.Intn(31))
			var endDate *time.Time
			if rand.Intn(2) == 0 {
				end := startDate.AddDate(0, 0, 30+rand.Intn(61))
				endDate = &end
			}

			id, err := utils.GenerateID()
			if err != nil {
				logrus.Fatalf("ERRO ao gerar id: %v", err)
			}
			name := fmt.Sprintf("%s - %s", kind.Name, brandNamesByID[brandID])

			res, err := stmt.Exec(id, brandID, name, status, kind.DailyBudget, kind.MonthlyBudget,
				dailySpend, monthlySpend, startDate, endDate)
			if err != nil {
				logrus.Errorf("ERRO ao inserir campanha %s: %v", name, err)
				errorCount++
				continue
			}
			if affected, _ := res.RowsAffected(); affected == 0 {
				logrus.Infof("Campanha %s já existe, ignorando", name)
				continue
			}

			campaigns = append(campaigns, seededCampaign{ID: id, Name: name, DailyBudget: kind.DailyBudget})
			logrus.WithField("campaign_id", id).Infof("Campanha criada: %s (status: %s)", name, status)
		}
	}

	logrus.Infof("Inserção de campanhas concluída em %v. Sucesso: %d, Erros: %d",
		time.Since(startTime), len(campaigns), errorCount)
	return campaigns
}

// jitter desloca um horário HH:MM em até 30 minutos sem cruzar a meia-noite
func jitter(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	shifted := t.Add(time.Duration(rand.Intn(61)-30) * time.Minute)
	if shifted.Day() != t.Day() {
		return clock
	}
	return shifted.Format("15:04")
}

func insertSchedules(tx *sql.Tx, campaigns []seededCampaign) {
	logrus.Infof("Iniciando inserção de janelas de veiculação para %d campanhas...", len(campaigns))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO dayparting_schedules (id, campaign_id, day_of_week, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE) ON CONFLICT (campaign_id, day_of_week) DO NOTHING`)
	if err != nil {
		logrus.Fatalf("ERRO ao preparar statement para dayparting_schedules: %v", err)
	}
	defer stmt.Close()

	insert := func(campaignID string, day int, w window) bool {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.Fatalf("ERRO ao gerar id: %v", err)
		}
		if _, err := stmt.Exec(id, campaignID, day, w.Start, w.End); err != nil {
			logrus.Errorf("ERRO ao inserir janela da campanha %s (dia %d): %v", campaignID, day, err)
			return false
		}
		return true
	}

	successCount := 0
	for _, c := range campaigns {
		// um terço das campanhas fica sem restrição de horário
		if rand.Intn(3) == 0 {
			continue
		}

		hours := businessHours
		if strings.HasPrefix(c.Name, "Brand Awareness") || strings.HasPrefix(c.Name, "Product Launch") {
			hours = append(append([]window{}, businessHours...), extendedHours...)
		}

		for day := 1; day <= 5; day++ {
			if rand.Intn(3) == 0 {
				continue
			}
			w := hours[rand.Intn(len(hours))]
			if insert(c.ID, day, window{Start: jitter(w.Start), End: jitter(w.End)}) {
				successCount++
			}
		}

		if rand.Intn(2) == 0 {
			for _, day := range []int{6, 7} {
				if rand.Intn(2) == 0 && insert(c.ID, day, businessHours[rand.Intn(len(businessHours))]) {
					successCount++
				}
			}
		}
	}

	logrus.Infof("Inserção de janelas concluída em %v. Sucesso: %d", time.Since(startTime), successCount)
}

func insertSpendLogs(tx *sql.Tx, campaigns []seededCampaign, now time.Time) {
	logrus.Infof("Iniciando inserção de lançamentos de gasto para %d campanhas...", len(campaigns))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO spend_logs (id, campaign_id, amount, timestamp, description) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		logrus.Fatalf("ERRO ao preparar statement para spend_logs: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0
	maxAmount := decimal.NewFromInt(50)

	for i, c := range campaigns {
		for n := 1 + rand.Intn(5); n > 0; n-- {
			upper := decimal.Min(c.DailyBudget.Mul(decimal.RequireFromString("0.3")), maxAmount)
			amount := randomAmount(1, upper.InexactFloat64())
			timestamp := now.Add(-time.Duration(rand.Intn(31)) * 24 * time.Hour).
				Add(-time.Duration(rand.Intn(24)) * time.Hour).
				Add(-time.Duration(rand.Intn(60)) * time.Minute)

			_, err := stmt.Exec(utils.GenerateUUID(), c.ID, amount, timestamp, spendDescriptions[rand.Intn(len(spendDescriptions))])
			if err != nil {
				logrus.Errorf("ERRO ao inserir lançamento da campanha %s: %v", c.ID, err)
				errorCount++
				continue
			}
			successCount++
		}
		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d campanhas processadas", i+1, len(campaigns))
		}
	}

	logrus.Infof("Inserção de lançamentos concluída em %v. Sucesso: %d, Erros: %d",
		time.Since(startTime), successCount, errorCount)
}

func insertAdmin(tx *sql.Tx) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("ERRO ao gerar hash da senha: %v", err)
	}

	_, err = tx.Exec(`INSERT INTO users (name, lastname, email, password_hash, active, role_id)
		VALUES ($1, $2, $3, $4, TRUE, $5) ON CONFLICT (email) DO NOTHING`,
		"Admin", "Agência", adminEmail, string(hash), domain.RoleAdmin)
	if err != nil {
		logrus.Fatalf("ERRO ao inserir administrador: %v", err)
	}
	logrus.Infof("Administrador disponível: %s", adminEmail)
}

func main() {
	brands := flag.Int("brands", 5, "quantidade de marcas (máximo 10)")
	perBrand := flag.Int("campaigns-per-brand", 3, "quantidade de campanhas por marca")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de seed...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	if err := migrations.Migrate(cfg.Database.DSN); err != nil {
		logrus.Fatalf("ERRO ao aplicar migrations: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("ERRO ao testar conexão com o banco: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}
	defer tx.Rollback()

	now := time.Now().In(cfg.App.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, cfg.App.Location)

	brandIDs := insertBrands(tx, *brands)
	campaigns := insertCampaigns(tx, brandIDs, *perBrand, today)
	insertSchedules(tx, campaigns)
	insertSpendLogs(tx, campaigns, now)
	insertAdmin(tx)

	if err := tx.Commit(); err != nil {
		logrus.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	logrus.Infof("Seed concluído:\n%s", utils.PrettyJson(map[string]int{
		"brands":    len(brandIDs),
		"campaigns": len(campaigns),
	}))
}
