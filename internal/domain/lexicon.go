package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MonthName binds a month number to its full genitive name and its abbreviation.
type MonthName struct {
	Number int
	Full   string
	Abbrev string
}

// Lexicon holds the fixed tables used by the matcher, normalizer, classifier and
// placeholder hints. Callers treat it as read-only; DefaultLexicon returns a fresh copy.
type Lexicon struct {
	Months    []MonthName
	Pagan     []string
	Christian []string
	Seasons   [12]Season
}

// DefaultLexicon returns the built-in Ukrainian folk-calendar tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Months: []MonthName{
			{Number: 1, Full: "січня", Abbrev: "січ"},
			{Number: 2, Full: "лютого", Abbrev: "лют"},
			{Number: 3, Full: "березня", Abbrev: "бер"},
			{Number: 4, Full: "квітня", Abbrev: "кві"},
			{Number: 5, Full: "травня", Abbrev: "тра"},
			{Number: 6, Full: "червня", Abbrev: "чер"},
			{Number: 7, Full: "липня", Abbrev: "лип"},
			{Number: 8, Full: "серпня", Abbrev: "сер"},
			{Number: 9, Full: "вересня", Abbrev: "вер"},
			{Number: 10, Full: "жовтня", Abbrev: "жов"},
			{Number: 11, Full: "листопада", Abbrev: "лис"},
			{Number: 12, Full: "грудня", Abbrev: "гру"},
		},
		Pagan: []string{
			"язичниц", "слов'ян", "древн", "дохристиян",
			"обряд", "ритуал", "гадання", "ворожіння",
			"Перун", "Велес", "Сварог", "Даждьбог", "Лада", "Мокош",
			"Купал", "Марена", "Ярило", "Коляда",
			"весняне", "літнє", "осіннє", "зимове", "рівнодення", "сонцестояння",
		},
		Christian: []string{
			"апостол", "святий", "святої", "мучени", "Христ",
			"церков", "православ", "хрищен", "Богородиц",
		},
		Seasons: [12]Season{
			{Name: "Зима", Description: "Час зимових свят, коляд та щедрівок. Період відпочинку природи."},
			{Name: "Зима", Description: "Останній місяць зими. Час підготовки до весни."},
			{Name: "Весна", Description: "Початок весни. Час пробудження природи та весняних обрядів."},
			{Name: "Весна", Description: "Розквіт весни. Час великодніх та весняних традицій."},
			{Name: "Весна", Description: "Пізня весна. Час зелених свят та закличних обрядів."},
			{Name: "Літо", Description: "Початок літа. Час купальських свят та літніх обрядів."},
			{Name: "Літо", Description: "Розпал літа. Час жнив та літніх традицій."},
			{Name: "Літо", Description: "Кінець літа. Час спасівських свят та збору врожаю."},
			{Name: "Осінь", Description: "Початок осені. Час осінніх обрядів та подяки за врожай."},
			{Name: "Осінь", Description: "Розпал осені. Час підготовки до зими."},
			{Name: "Осінь", Description: "Пізня осінь. Час завершення польових робіт."},
			{Name: "Зима", Description: "Початок зими. Час зимових свят та підготовки до Нового року."},
		},
	}
}

// SeasonFor returns the hint for month 1..12 and false otherwise.
func (l Lexicon) SeasonFor(month int) (Season, bool) {
	if month < 1 || month > 12 {
		return Season{}, false
	}
	return l.Seasons[month-1], true
}

// Validate checks that the month table covers 1..12 exactly once with
// non-empty names and that both keyword sets are non-empty.
func (l Lexicon) Validate() error {
	if len(l.Months) != 12 {
		return fmt.Errorf("lexicon: expected 12 months, got %d: %w", len(l.Months), ErrInvalidConfig)
	}
	seen := map[int]bool{}
	for i, m := range l.Months {
		if m.Number < 1 || m.Number > 12 {
			return fmt.Errorf("lexicon: months[%d]: number %d out of range: %w", i, m.Number, ErrInvalidConfig)
		}
		if seen[m.Number] {
			return fmt.Errorf("lexicon: months[%d]: duplicate number %d: %w", i, m.Number, ErrInvalidConfig)
		}
		seen[m.Number] = true
		if strings.TrimSpace(m.Full) == "" || strings.TrimSpace(m.Abbrev) == "" {
			return fmt.Errorf("lexicon: months[%d]: full and abbrev names are required: %w", i, ErrInvalidConfig)
		}
	}
	if len(l.Pagan) == 0 || len(l.Christian) == 0 {
		return errors.Join(ErrInvalidConfig, errors.New("lexicon: pagan and christian keyword sets must not be empty"))
	}
	return nil
}
