package models

// Post is a JobOffer as seen by one student.
type Post struct {
	ID                    int
	CompanyName           string
	CompanyProfilePicture string
	Role                  string
	Title                 string
	Description           string
	PromotionalImageURL   *string
	LikeCount             int
	Liked                 bool
	AppliedStudentsCount  int
	Subscribed            bool
	JobExperience         int
	Active                bool
	// CreatedAt is in Unix milliseconds, 0 when the backend sent an unreadable date.
	CreatedAt int64
}

// WithLike returns a copy of p reflecting a like toggle by the viewer.
func (p Post) WithLike(liked bool) Post {
	if p.Liked == liked {
		return p
	}
	p.Liked = liked
	if liked {
		p.LikeCount++
	} else if p.LikeCount > 0 {
		p.LikeCount--
	}
	return p
}

// WithSubscription returns a copy of p after the viewer applied to it.
func (p Post) WithSubscription() Post {
	if p.Subscribed {
		return p
	}
	p.Subscribed = true
	p.AppliedStudentsCount++
	return p
}
