package score

import (
	"fmt"
	"strings"

	"github.com/avdberg/schoolscout/pkg/school"
)

type sizeBucket string

const (
	bucketSmall     sizeBucket = "small"
	bucketMedium    sizeBucket = "medium"
	bucketLarge     sizeBucket = "large"
	bucketVeryLarge sizeBucket = "very_large"
)

// sizeScores maps preference x enrollment bucket to a fixed score. The
// any row is also the fallback for unknown preference values.
var sizeScores = map[SizePreference]map[sizeBucket]float64{
	SizeSmall:  {bucketSmall: 100, bucketMedium: 70, bucketLarge: 50, bucketVeryLarge: 30},
	SizeMedium: {bucketSmall: 70, bucketMedium: 100, bucketLarge: 80, bucketVeryLarge: 60},
	SizeLarge:  {bucketSmall: 50, bucketMedium: 80, bucketLarge: 100, bucketVeryLarge: 90},
	SizeAny:    {bucketSmall: 80, bucketMedium: 80, bucketLarge: 80, bucketVeryLarge: 80},
}

func bucketFor(total int) sizeBucket {
	switch {
	case total < 500:
		return bucketSmall
	case total < 1000:
		return bucketMedium
	case total <= 1500:
		return bucketLarge
	default:
		return bucketVeryLarge
	}
}

// SchoolSize scores how well the enrollment matches the preferred
// school size. Nil when the record carries no positive student count.
func SchoolSize(r *school.Record, pref SizePreference) CategoryScore {
	total := r.EnrollmentTotal()
	if total == nil || *total <= 0 {
		return CategoryScore{Details: "No enrollment data"}
	}

	bucket := bucketFor(*total)
	row, ok := sizeScores[pref]
	if !ok {
		row = sizeScores[SizeAny]
	}

	return CategoryScore{
		Score:   ptr(row[bucket]),
		Details: fmt.Sprintf("%d students (%s)", *total, strings.ReplaceAll(string(bucket), "_", " ")),
	}
}
