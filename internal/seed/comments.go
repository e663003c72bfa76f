package seed

import (
	"github.com/blog-platform-api/internal/models"
)

func intp(v int) *int { return &v }

// Comments returns a fresh copy of the seed comment forest, nested the way
// the thread engine ingests it.
func Comments() []*models.Comment {
	return []*models.Comment{
		{
			ID:        1,
			Content:   "This is a fantastic article! I especially appreciated the section on healthcare applications. I work in medical research and we're already seeing some of these technologies being implemented.",
			Author:    "Emily Watson",
			ArticleID: 1,
			CreatedAt: ts("2023-06-16T10:24:00Z"),
			Likes:     15,
			Replies: []*models.Comment{
				{
					ID:        2,
					Content:   "I agree! I'm curious about how privacy concerns are being addressed in these healthcare implementations. Do you have any insights from your work?",
					Author:    "Michael Rodriguez",
					ArticleID: 1,
					ParentID:  intp(1),
					CreatedAt: ts("2023-06-16T11:05:00Z"),
					Likes:     8,
					Replies: []*models.Comment{
						{
							ID:        3,
							Content:   "Great question! The systems I've seen use a combination of blockchain for verification while keeping sensitive data off-chain with advanced encryption. Patient consent is managed through smart contracts that give granular control over who can access what information and for how long.",
							Author:    "Emily Watson",
							ArticleID: 1,
							ParentID:  intp(2),
							CreatedAt: ts("2023-06-16T11:30:00Z"),
							Likes:     10,
						},
					},
				},
			},
		},
		{
			ID:        4,
			Content:   "I'm skeptical about some of these predictions. The timeline seems too aggressive given the regulatory hurdles in healthcare and the technical challenges with scaling blockchain systems.",
			Author:    "David Chen",
			ArticleID: 1,
			CreatedAt: ts("2023-06-16T13:42:00Z"),
			Likes:     4,
		},
		{
			ID:        5,
			Content:   "This article inspired me to start implementing some of these sustainable practices. I've already switched to reusable shopping bags and started a small herb garden on my balcony!",
			Author:    "Sarah Johnson",
			ArticleID: 2,
			CreatedAt: ts("2023-06-11T09:15:00Z"),
			Likes:     20,
			Replies: []*models.Comment{
				{
					ID:        6,
					Content:   "That's wonderful to hear, Sarah! I found that starting small like that builds momentum. Next I switched to a bamboo toothbrush and started composting kitchen scraps. Every little bit helps!",
					Author:    "Taylor Kim",
					ArticleID: 2,
					ParentID:  intp(5),
					CreatedAt: ts("2023-06-11T10:07:00Z"),
					Likes:     12,
				},
			},
		},
		{
			ID:        7,
			Content:   "I've been practicing mindfulness meditation for over a year now, and it has completely transformed how I handle stress. It takes consistency though - the benefits really compound over time.",
			Author:    "James Wilson",
			ArticleID: 3,
			CreatedAt: ts("2023-06-06T16:20:00Z"),
			Likes:     18,
		},
		{
			ID:        8,
			Content:   "As someone new to meditation, I found this guide really accessible. I've been trying the 5-minute practice for a week and already notice I'm less reactive to small annoyances.",
			Author:    "Priya Patel",
			ArticleID: 3,
			CreatedAt: ts("2023-06-07T08:35:00Z"),
			Likes:     14,
		},
	}
}

// CommentsFor returns the seed comment forest for one article.
func CommentsFor(articleID int) []*models.Comment {
	var out []*models.Comment
	for _, c := range Comments() {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out
}
