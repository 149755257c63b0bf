package score

import (
	"fmt"

	"github.com/avdberg/schoolscout/pkg/school"
)

// ParentSatisfaction scores the most recent parent review: the 0-10
// overall rating scaled to 0-100. The record loader keeps review lists
// sorted most recent first.
func ParentSatisfaction(r *school.Record) CategoryScore {
	return satisfaction(r.ParentReviews(), "No parent reviews", func(rev school.Review) string {
		if rev.WouldRecommend == nil {
			return ""
		}
		return fmt.Sprintf(", %.1f/10 recommend", *rev.WouldRecommend)
	})
}

// StudentSatisfaction scores the most recent student review the same
// way ParentSatisfaction scores parent reviews.
func StudentSatisfaction(r *school.Record) CategoryScore {
	return satisfaction(r.StudentReviews(), "No student reviews", func(rev school.Review) string {
		if rev.VoiceMatters == nil {
			return ""
		}
		return fmt.Sprintf(", %.1f/10 voice matters", *rev.VoiceMatters)
	})
}

func satisfaction(reviews []school.Review, emptyDetails string, extra func(school.Review) string) CategoryScore {
	if len(reviews) == 0 {
		return CategoryScore{Details: emptyDetails}
	}

	latest := reviews[0]
	if latest.OverallRating == nil {
		return CategoryScore{Details: "No rating available"}
	}

	rating := *latest.OverallRating
	return CategoryScore{
		Score:   ptr(round1(rating * 10)),
		Details: fmt.Sprintf("%.1f/10 rating%s", rating, extra(latest)),
	}
}
