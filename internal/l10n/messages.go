package l10n

// bundled holds the translations shipped with the service, keyed by base
// language and English source string.
var bundled = map[string]map[string][]string{
	"fa": {
		"Midnight on the day the event starts":              {"نیمه‌شب روز شروع رویداد"},
		"%n day before the event at {formattedHourMinute}":  {"%n روز قبل از رویداد در ساعت {formattedHourMinute}"},
		"%n week before the event at {formattedHourMinute}": {"%n هفته قبل از رویداد در ساعت {formattedHourMinute}"},
		"on the day of the event at {formattedHourMinute}":  {"در روز رویداد در ساعت {formattedHourMinute}"},
		"at the event's start":                              {"در زمان شروع رویداد"},
		"at the event's end":                                {"در زمان پایان رویداد"},
		"{time} before the event starts":                    {"{time} قبل از شروع رویداد"},
		"{time} before the event ends":                      {"{time} قبل از پایان رویداد"},
		"{time} after the event starts":                     {"{time} بعد از شروع رویداد"},
		"{time} after the event ends":                       {"{time} بعد از پایان رویداد"},
		"on {time}":                                         {"در {time}"},
		"on {time} ({timezoneId})":                          {"در {time} ({timezoneId})"},
		"Week {number} of {year}":                           {"هفته {number} از {year}"},

		"a few seconds": {"چند ثانیه"},
		"a minute":      {"یک دقیقه"},
		"%n minute":     {"%n دقیقه"},
		"an hour":       {"یک ساعت"},
		"%n hour":       {"%n ساعت"},
		"a day":         {"یک روز"},
		"%n day":        {"%n روز"},
		"a month":       {"یک ماه"},
		"%n month":      {"%n ماه"},
		"a year":        {"یک سال"},
		"%n year":       {"%n سال"},
	},
	"de": {
		"Midnight on the day the event starts":              {"Mitternacht am Tag des Beginns"},
		"%n day before the event at {formattedHourMinute}":  {"%n Tag vor dem Termin um {formattedHourMinute}", "%n Tage vor dem Termin um {formattedHourMinute}"},
		"%n week before the event at {formattedHourMinute}": {"%n Woche vor dem Termin um {formattedHourMinute}", "%n Wochen vor dem Termin um {formattedHourMinute}"},
		"on the day of the event at {formattedHourMinute}":  {"am Tag des Termins um {formattedHourMinute}"},
		"at the event's start":                              {"zu Beginn des Termins"},
		"at the event's end":                                {"am Ende des Termins"},
		"{time} before the event starts":                    {"{time} vor Beginn des Termins"},
		"{time} before the event ends":                      {"{time} vor Ende des Termins"},
		"{time} after the event starts":                     {"{time} nach Beginn des Termins"},
		"{time} after the event ends":                       {"{time} nach Ende des Termins"},
		"on {time}":                                         {"am {time}"},
		"on {time} ({timezoneId})":                          {"am {time} ({timezoneId})"},
		"Week {number} of {year}":                           {"Woche {number} von {year}"},

		"a few seconds": {"ein paar Sekunden"},
		"a minute":      {"eine Minute"},
		"%n minute":     {"%n Minute", "%n Minuten"},
		"an hour":       {"eine Stunde"},
		"%n hour":       {"%n Stunde", "%n Stunden"},
		"a day":         {"ein Tag"},
		"%n day":        {"%n Tag", "%n Tage"},
		"a month":       {"ein Monat"},
		"%n month":      {"%n Monat", "%n Monate"},
		"a year":        {"ein Jahr"},
		"%n year":       {"%n Jahr", "%n Jahre"},
	},
}
