package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"freightsite/internal/config"
	"freightsite/internal/database"
	"freightsite/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	db, err := database.Connect(config.ResolveDSN())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Service{},
		&domain.Certificate{},
		&domain.TeamMember{},
		&domain.ContactMessage{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old content...")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM team_members")
	db.Exec("DELETE FROM certificates")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set, using default dev password admin123")
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Username:     "admin",
		Email:        "admin@freightsite.example",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	log.Println("Admin created: admin")

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{
			NameEN:        "Sea Freight",
			NameAR:        "الشحن البحري",
			NameRO:        "Transport Maritim",
			DescriptionEN: "Full and less-than-container loads to and from every major port.",
			DescriptionAR: "حمولات كاملة وجزئية من وإلى جميع الموانئ الرئيسية.",
			DescriptionRO: "Încărcături complete și parțiale către și dinspre toate porturile majore.",
			Icon:          "Ship",
			Features:      []string{"FCL", "LCL", "Port-to-door"},
			IsActive:      true,
			SortOrder:     1,
		},
		{
			NameEN:        "Air Freight",
			NameAR:        "الشحن الجوي",
			NameRO:        "Transport Aerian",
			DescriptionEN: "Express and consolidated air cargo with daily departures.",
			DescriptionAR: "شحن جوي سريع ومجمع مع رحلات يومية.",
			DescriptionRO: "Marfă aeriană expres și consolidată cu plecări zilnice.",
			Icon:          "Plane",
			Features:      []string{"Express", "Consolidation", "Door-to-door"},
			IsActive:      true,
			SortOrder:     2,
		},
		{
			NameEN:        "Road Transport",
			NameAR:        "النقل البري",
			NameRO:        "Transport Rutier",
			DescriptionEN: "FTL and LTL trucking across Europe and the Middle East.",
			DescriptionAR: "نقل بري كامل وجزئي عبر أوروبا والشرق الأوسط.",
			DescriptionRO: "Transport rutier FTL și LTL în Europa și Orientul Mijlociu.",
			Icon:          "Truck",
			Features:      []string{"FTL", "LTL", "Cross-border"},
			IsActive:      true,
			SortOrder:     3,
		},
		{
			NameEN:        "Customs Clearance",
			NameAR:        "التخليص الجمركي",
			NameRO:        "Vămuire",
			DescriptionEN: "Import and export clearance handled by licensed brokers.",
			DescriptionAR: "تخليص الاستيراد والتصدير بواسطة وسطاء مرخصين.",
			DescriptionRO: "Vămuire la import și export prin brokeri licențiați.",
			Icon:          "FileCheck",
			Features:      []string{"Import", "Export", "Documentation"},
			IsActive:      true,
			SortOrder:     4,
		},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== CERTIFICATES ==================
	log.Println("Creating certificates...")
	isoIssued := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)
	isoExpiry := isoIssued.AddDate(3, 0, 0)
	fiataIssued := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	certificates := []domain.Certificate{
		{
			NameEN:     "ISO 9001:2015",
			NameAR:     "آيزو 9001:2015",
			NameRO:     "ISO 9001:2015",
			IssuedBy:   "Lloyd's Register",
			IssuedDate: &isoIssued,
			ExpiryDate: &isoExpiry,
			IsActive:   true,
			SortOrder:  1,
		},
		{
			NameEN:     "FIATA Membership",
			NameAR:     "عضوية فياتا",
			NameRO:     "Membru FIATA",
			IssuedBy:   "FIATA",
			IssuedDate: &fiataIssued,
			IsActive:   true,
			SortOrder:  2,
		},
	}
	for i := range certificates {
		db.Create(&certificates[i])
	}

	// ================== TEAM ==================
	log.Println("Creating team members...")
	team := []domain.TeamMember{
		{
			NameEN:          "Adrian Popescu",
			NameAR:          "أدريان بوبيسكو",
			NameRO:          "Adrian Popescu",
			PositionEN:      "Managing Director",
			PositionAR:      "المدير العام",
			PositionRO:      "Director General",
			Email:           "adrian@freightsite.example",
			ExperienceYears: 18,
			IsActive:        true,
			SortOrder:       1,
		},
		{
			NameEN:          "Layla Haddad",
			NameAR:          "ليلى حداد",
			NameRO:          "Layla Haddad",
			PositionEN:      "Operations Manager",
			PositionAR:      "مديرة العمليات",
			PositionRO:      "Manager Operațiuni",
			Email:           "layla@freightsite.example",
			ExperienceYears: 11,
			IsActive:        true,
			SortOrder:       2,
		},
	}
	for i := range team {
		db.Create(&team[i])
	}

	log.Println("Seed finished.")
}
