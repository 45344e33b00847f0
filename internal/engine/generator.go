package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces fake column values from a seeded faker.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Value generates a value for a column based on its declared type and the
// meaning decoded from its name.
func (g *Generator) Value(colName, dataType string) interface{} {
	f := g.faker
	dataType = strings.ToLower(dataType)
	colName = strings.ToLower(colName)
	meaning := Meaning(colName)

	// 1. String types (meaning first)
	if strings.Contains(dataType, "char") || strings.Contains(dataType, "text") || strings.Contains(dataType, "clob") {
		switch {
		case strings.Contains(meaning, "phone"):
			return f.Phone()
		case strings.Contains(meaning, "email"):
			return f.Email()
		case strings.Contains(meaning, "name"):
			return f.Name()
		case strings.Contains(meaning, "zipcode"):
			return f.Zip()
		case strings.Contains(meaning, "address"):
			return f.Street()
		case strings.Contains(meaning, "city"):
			return f.City()
		case strings.Contains(meaning, "country"):
			return f.Country()
		case strings.Contains(meaning, "yesno"):
			if f.Bool() {
				return "Y"
			}
			return "N"
		case strings.Contains(meaning, "status"):
			return f.RandomString([]string{"ACTIVE", "PENDING", "CLOSED"})
		case strings.Contains(meaning, "title"), strings.Contains(meaning, "subject"):
			return f.Sentence(3)
		case strings.Contains(meaning, "description"), strings.Contains(meaning, "message"), strings.Contains(meaning, "text"):
			return f.Sentence(10)
		}
		return f.Word()
	}

	// 2. Dates are stored as text in SQLite
	if strings.Contains(dataType, "date") || strings.Contains(dataType, "time") {
		val := f.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		if dataType == "date" {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	}

	if strings.Contains(dataType, "int") {
		if strings.Contains(meaning, "yesno") || strings.Contains(colName, "active") {
			return f.Number(0, 1)
		}
		if strings.Contains(colName, "year") {
			return f.Number(2000, 2025)
		}
		return f.Number(1, 50000)
	}

	if strings.Contains(meaning, "latitude") {
		return f.Latitude()
	}
	if strings.Contains(meaning, "longitude") {
		return f.Longitude()
	}
	if strings.Contains(dataType, "real") || strings.Contains(dataType, "numeric") ||
		strings.Contains(dataType, "decimal") || strings.Contains(dataType, "float") || strings.Contains(dataType, "double") {
		return f.Price(0.99, 99.99)
	}

	if strings.Contains(dataType, "bool") {
		return f.Bool()
	}

	if strings.Contains(dataType, "blob") {
		return []byte(fmt.Sprintf("blob-%s", f.LetterN(8)))
	}

	return nil
}
