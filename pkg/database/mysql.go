package database

import (
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Tenant{},
		&model.TenantUser{},
		&model.Company{},
		&model.UserCompanyAccess{},
		&model.BusinessArea{},
		&model.BusinessSubArea{},
		&model.Person{},
		&model.RefArchetype{},
		&model.RefTechLevel{},
		&model.RefBusinessLevel{},
		&model.Application{},
		&model.AssessmentSection{},
		&model.Question{},
		&model.QuestionOption{},
		&model.AssessmentTemplate{},
		&model.Assessment{},
		&model.AssessmentAnswer{},
		&model.AssessmentDiagnosis{},
	)
}

// Seed fills the reference tables and the question catalog when they are
// empty. New installs get a usable questionnaire out of the box; existing
// databases are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedReferences(db); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedReferences(db *gorm.DB) error {
	var count int64
	db.Model(&model.RefArchetype{}).Count(&count)
	if count == 0 {
		archetypes := []model.RefArchetype{
			{Label: "Visionário", Description: "Puxa iniciativas novas e assume riscos"},
			{Label: "Executor", Description: "Entrega com consistência dentro do processo"},
			{Label: "Guardião", Description: "Protege qualidade, segurança e conformidade"},
			{Label: "Conector", Description: "Faz a ponte entre negócio e tecnologia"},
		}
		for _, a := range archetypes {
			if err := db.Create(&a).Error; err != nil {
				return err
			}
		}
	}

	db.Model(&model.RefTechLevel{}).Count(&count)
	if count == 0 {
		for i, label := range []string{"Básico", "Intermediário", "Avançado", "Especialista"} {
			if err := db.Create(&model.RefTechLevel{Label: label, LevelNumber: i + 1}).Error; err != nil {
				return err
			}
		}
	}

	db.Model(&model.RefBusinessLevel{}).Count(&count)
	if count == 0 {
		for i, label := range []string{"Operacional", "Tático", "Estratégico"} {
			if err := db.Create(&model.RefBusinessLevel{Label: label, LevelNumber: i + 1}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count > 0 {
		return nil
	}

	sections := []model.AssessmentSection{
		{Title: "Governança e Estratégia"},
		{Title: "Dados e Infraestrutura"},
		{Title: "Pessoas e Cultura"},
	}
	for i := range sections {
		if err := db.Create(&sections[i]).Error; err != nil {
			return err
		}
	}

	type seedQuestion struct {
		text    string
		section int
	}
	questions := []seedQuestion{
		{"A aplicação possui diretrizes formais para uso de IA?", 0},
		{"Existe um responsável definido pela governança de IA da aplicação?", 0},
		{"Os riscos de IA da aplicação são avaliados periodicamente?", 0},
		{"Os dados usados pela aplicação têm qualidade monitorada?", 1},
		{"A infraestrutura suporta treinar e servir modelos em produção?", 1},
		{"Há rastreabilidade dos dados que alimentam decisões automatizadas?", 1},
		{"O time da aplicação recebe capacitação contínua em IA?", 2},
		{"Os usuários da aplicação confiam nas respostas geradas por IA?", 2},
	}

	optionScale := []struct {
		text  string
		score int
	}{
		{"Inexistente", 0},
		{"Inicial", 25},
		{"Parcial", 50},
		{"Estruturado", 75},
		{"Consolidado", 100},
	}

	for i, q := range questions {
		question := model.Question{
			Text:       q.text,
			OrderIndex: i + 1,
			SectionID:  sections[q.section].ID,
		}
		if err := db.Create(&question).Error; err != nil {
			return err
		}
		for _, opt := range optionScale {
			o := model.QuestionOption{
				QuestionID: question.ID,
				Text:       opt.text,
				ScoreValue: opt.score,
			}
			if err := db.Create(&o).Error; err != nil {
				return err
			}
		}
	}

	var tplCount int64
	db.Model(&model.AssessmentTemplate{}).Count(&tplCount)
	if tplCount == 0 {
		tpl := model.AssessmentTemplate{Name: "Questionário de Maturidade em IA", VersionNumber: 1, IsActive: true}
		if err := db.Create(&tpl).Error; err != nil {
			return err
		}
	}

	return nil
}
