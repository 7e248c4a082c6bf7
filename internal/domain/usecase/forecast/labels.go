package forecast

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

const todayLabel = "Today"

type dateNames struct {
	weekdays [7]string
	months   [12]string
	layout   func(weekday, month string, day int) string
}

var supportedLanguages = []language.Tag{
	language.English,
	language.Portuguese,
	language.Indonesian,
	language.Malay,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var namesByLanguage = map[language.Base]dateNames{
	base(language.English): {
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		layout: func(weekday, month string, day int) string {
			return fmt.Sprintf("%s, %s %d", weekday, month, day)
		},
	},
	base(language.Portuguese): {
		weekdays: [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		months:   [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		layout: func(weekday, month string, day int) string {
			return fmt.Sprintf("%s, %d de %s", weekday, day, month)
		},
	},
	base(language.Indonesian): {
		weekdays: [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
		layout: func(weekday, month string, day int) string {
			return fmt.Sprintf("%s, %d %s", weekday, day, month)
		},
	},
	base(language.Malay): {
		weekdays: [7]string{"Ahd", "Isn", "Sel", "Rab", "Kha", "Jum", "Sab"},
		months:   [12]string{"Jan", "Feb", "Mac", "Apr", "Mei", "Jun", "Jul", "Ogo", "Sep", "Okt", "Nov", "Dis"},
		layout: func(weekday, month string, day int) string {
			return fmt.Sprintf("%s, %d %s", weekday, day, month)
		},
	},
}

func base(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}

// MatchLanguage picks the supported language closest to an Accept-Language header.
// English is returned for empty or unparsable headers.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, index, _ := languageMatcher.Match(tags...)
	return supportedLanguages[index]
}

// DayLabel labels the period at index. The first period is always "Today"; the others
// get a short weekday, month and day in the given language. Dates that do not parse
// are returned as sent.
func DayLabel(index int, date string, tag language.Tag) string {
	if index == 0 {
		return todayLabel
	}

	parsed, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}

	names, ok := namesByLanguage[base(tag)]
	if !ok {
		names = namesByLanguage[base(language.English)]
	}
	return names.layout(names.weekdays[parsed.Weekday()], names.months[parsed.Month()-1], parsed.Day())
}
