package i18n

var HE = Messages{
	"generation_label":    "דור %d",
	"no_results":          "לא נמצאו תוצאות",
	"no_results_hint":     "נסה חיפוש אחר או נקה את תיבת החיפוש",
	"no_results_for":      "החיפוש \"%s\" לא העלה תוצאות. נסה מילת חיפוש אחרת.",
	"results_for":         "נמצאו %d תוצאות עבור \"%s\"",
	"loading":             "טוען עץ המשפחה...",
	"loaded":              "העץ המשפחה נטען בהצלחה",
	"welcome_title":       "ברוכים הבאים למוזיאון המשפחה!",
	"welcome_description": "גלה את סיפור המשפחה ההיסטורי. העבר עכבר על הכרטיסים לראות קשרים משפחתיים.",
	"hover_hint":          "העבר עכבר על כרטיס לראות קשרים",
}
