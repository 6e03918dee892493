package localization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metargb/calendar-format/internal/gregorian"
)

type recordingFormatter struct {
	formats []string
	inner   GregorianFormatter
}

func (r *recordingFormatter) Format(t time.Time, format, locale string) string {
	r.formats = append(r.formats, format)
	return r.inner.Format(t, format, locale)
}

func buildArgs(start []int, end []int, separator string) RangeArg {
	arg := RangeArg{Start: ArrayPart(start...), DefaultSeparator: separator}
	if end != nil {
		e := ArrayPart(end...)
		arg.End = &e
	}
	return arg
}

func newTestDispatcher(locale string, opts ...Option) *Dispatcher {
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return NewDispatcher(StaticLocale(locale), gregorian.NewFormatter(), opts...)
}

func TestDispatcher_PersianSingleValues(t *testing.T) {
	d := newTestDispatcher("fa-IR")
	arg := buildArgs([]int{2024, 0, 15, 10, 30}, nil, " - ")

	assert.Equal(t, "۱۰:۳۰", d.Format("LT", arg))
	assert.Equal(t, "۲۵ دی ۱۴۰۲", d.Format("ll", arg))
	assert.Equal(t, "۲۵ دی ۱۴۰۲", d.Format("LL", arg))
	assert.Equal(t, "۱۴۰۲/۱۰/۲۵", d.Format("L", arg))
	assert.Equal(t, "۱۴۰۲/۱۰/۲۵", d.Format("l", arg))
	assert.Equal(t, "دوشنبه", d.Format("dddd", arg))
	assert.Equal(t, "دوشنبه ۱۴۰۲/۱۰/۲۵", d.Format("ddd l", arg))
	assert.Equal(t, "۲۵ دی ۱۴۰۲، دوشنبه", d.Format("LL, dddd", arg))
}

func TestDispatcher_PersianRanges(t *testing.T) {
	d := newTestDispatcher("fa")

	t.Run("distinct values are joined with the supplied separator", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 0, 15, 12, 0}, " - ")
		assert.Equal(t, "۱۰:۳۰ - ۱۲:۰۰", d.Format("LT", arg))
	})

	t.Run("empty separator selects the default", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 0, 15, 12, 0}, "")
		assert.Equal(t, "۱۰:۳۰"+DefaultSeparator+"۱۲:۰۰", d.Format("LT", arg))
	})

	t.Run("identical results collapse", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 0, 15, 10, 30}, " - ")
		out := d.Format("LT", arg)
		assert.Equal(t, "۱۰:۳۰", out)
		assert.NotContains(t, out, " - ")
	})

	t.Run("same day with a date token collapses", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15, 8}, []int{2024, 0, 15, 18}, " - ")
		assert.Equal(t, "۲۵ دی ۱۴۰۲", d.Format("LL", arg))
	})

	t.Run("exact concatenation for distinct dates", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15}, []int{2024, 0, 16}, " ~ ")
		assert.Equal(t, "۲۵ دی ۱۴۰۲ ~ ۲۶ دی ۱۴۰۲", d.Format("LL", arg))
	})

	t.Run("unresolvable end keeps the start", func(t *testing.T) {
		arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{}, " - ")
		assert.Equal(t, "۱۰:۳۰", d.Format("LT", arg))
	})
}

func TestDispatcher_MarkerAndDateParts(t *testing.T) {
	d := newTestDispatcher("fa")
	start := MarkerPart(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	end := DatePart(time.Date(2024, 1, 15, 11, 45, 0, 0, time.UTC))

	assert.Equal(t, "۱۰:۳۰ - ۱۱:۴۵", d.Format("LT", RangeArg{Start: start, End: &end, DefaultSeparator: " - "}))
}

func TestDispatcher_NonPersianUsesGregorian(t *testing.T) {
	d := newTestDispatcher("en")
	arg := buildArgs([]int{2024, 0, 15, 10, 30}, nil, " - ")

	expected := gregorian.NewFormatter().Format(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), "LT", "en")
	assert.Equal(t, expected, d.Format("LT", arg))
	assert.Equal(t, "10:30 AM", d.Format("LT", arg))
}

func TestDispatcher_GregorianRange(t *testing.T) {
	d := newTestDispatcher("de")

	arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 0, 15, 12, 0}, " - ")
	assert.Equal(t, "10:30 - 12:00", d.Format("LT", arg))

	same := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 0, 15, 10, 30}, " - ")
	assert.Equal(t, "10:30", d.Format("LT", same))
}

func TestDispatcher_UnrecognizedTokenFallsBack(t *testing.T) {
	arg := buildArgs([]int{2024, 0, 15, 10, 30}, []int{2024, 1, 20, 9, 0}, " - ")

	for _, token := range []string{"MMMM YYYY", "YYYY", "HH:mm", "LLLL", "dddd D"} {
		t.Run(token, func(t *testing.T) {
			rec := &recordingFormatter{inner: gregorian.NewFormatter()}
			persian := NewDispatcher(StaticLocale("fa"), rec, WithLocation(time.UTC))

			got := persian.Format(token, arg)
			want := NewDispatcher(StaticLocale("fa"), gregorian.NewFormatter(), WithLocation(time.UTC)).
				formatGregorianRange(token, arg, "fa")

			assert.Equal(t, want, got)
			require.NotEmpty(t, rec.formats)
			for _, f := range rec.formats {
				assert.Equal(t, token, f)
			}
		})
	}
}

func TestDispatcher_UnresolvableStartFallsBack(t *testing.T) {
	rec := &recordingFormatter{inner: gregorian.NewFormatter()}
	d := NewDispatcher(StaticLocale("fa"), rec, WithLocation(time.UTC))

	assert.Empty(t, d.Format("LT", RangeArg{Start: ArrayPart()}))
	assert.Empty(t, d.Format("LT", RangeArg{}))
	assert.Empty(t, rec.formats)
}

func TestDispatcher_Observer(t *testing.T) {
	paths := map[Path]int{}
	observe := func(p Path) { paths[p]++ }
	arg := buildArgs([]int{2024, 0, 15, 10, 30}, nil, "")

	newTestDispatcher("fa", WithObserver(observe)).Format("LT", arg)
	newTestDispatcher("fa", WithObserver(observe)).Format("MMMM", arg)
	newTestDispatcher("en", WithObserver(observe)).Format("LT", arg)

	assert.Equal(t, 1, paths[PathJalali])
	assert.Equal(t, 2, paths[PathGregorian])
}

func TestPartLike_Resolve(t *testing.T) {
	t.Run("array defaults", func(t *testing.T) {
		got, ok := ArrayPart(2024).Resolve(time.UTC)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("full array", func(t *testing.T) {
		got, ok := ArrayPart(2024, 11, 31, 23, 59, 58, 250).Resolve(time.UTC)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 58, 250*int(time.Millisecond), time.UTC), got)
	})

	t.Run("nil location uses local time", func(t *testing.T) {
		got, ok := ArrayPart(2024, 0, 15).Resolve(nil)
		require.True(t, ok)
		assert.Equal(t, time.Local, got.Location())
	})

	t.Run("unrepresentable year", func(t *testing.T) {
		_, ok := ArrayPart(300000).Resolve(time.UTC)
		assert.False(t, ok)
	})

	t.Run("zero instants", func(t *testing.T) {
		_, ok := MarkerPart(time.Time{}).Resolve(time.UTC)
		assert.False(t, ok)
		_, ok = DatePart(time.Time{}).Resolve(time.UTC)
		assert.False(t, ok)
		_, ok = PartLike{}.Resolve(time.UTC)
		assert.False(t, ok)
	})

	t.Run("array is copied", func(t *testing.T) {
		fields := []int{2024, 0, 15}
		part := ArrayPart(fields...)
		fields[0] = 1999
		got, ok := part.Resolve(time.UTC)
		require.True(t, ok)
		assert.Equal(t, 2024, got.Year())
	})
}

func TestDispatcher_UnresolvableEndKeepsStart(t *testing.T) {
	empty := ArrayPart()
	arg := RangeArg{Start: ArrayPart(2024, 0, 15, 10, 30), End: &empty}

	assert.Equal(t, "10:30 AM", newTestDispatcher("en").Format("LT", arg))
	assert.Equal(t, "ژانویه", newTestDispatcher("fa").Format("MMMM", arg))
	assert.Equal(t, "۱۰:۳۰", newTestDispatcher("fa").Format("LT", arg))
}

func TestDispatcher_PersianBeforeSupportedRange(t *testing.T) {
	d := newTestDispatcher("fa")

	assert.Equal(t, "۹۰۰/۳/۱", d.Format("L", buildArgs([]int{900, 2, 1}, nil, "")))
	assert.Equal(t, "۱ ژوئن ۱۰۰۰", d.Format("LL", buildArgs([]int{1000, 5, 1}, nil, "")))
}
