// Package seed holds the static article and comment collections that stand
// in for a real backend. The repositories serve them behind the same
// read-only interfaces a database-backed implementation would use.
package seed

import (
	"time"

	"github.com/blog-platform-api/internal/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Articles returns a fresh copy of the seed article collection.
func Articles() []models.Article {
	return []models.Article{
		{
			ID:      1,
			Title:   "The Future of Artificial Intelligence in 2025",
			Slug:    "future-of-artificial-intelligence-2025",
			Excerpt: "Exploring how AI will transform industries and daily life in the coming years, from healthcare advancements to personal assistants.",
			Content: `# The Future of Artificial Intelligence in 2025

Artificial intelligence has been rapidly evolving over the past decade, and its pace shows no signs of slowing down. As we look ahead to 2025, several key trends and developments are poised to reshape how we interact with AI in our daily lives and across industries.

## Healthcare Revolution

Perhaps one of the most promising applications of advanced AI is in healthcare. By 2025, we expect to see AI-powered diagnostic tools that can detect diseases earlier and with greater accuracy than human physicians alone. These systems will analyze patterns across vast datasets of medical images, patient histories, and genetic information to identify subtle indicators of conditions before they become symptomatic.

## Smarter Cities

Urban infrastructure is another area ripe for AI transformation. Smart city initiatives will leverage AI to optimize traffic flow, reduce energy consumption, and enhance public safety.

## Ethical Considerations

As AI becomes more powerful and ubiquitous, ethical questions will take center stage. How do we ensure that AI systems don't perpetuate existing biases? What privacy protections should be in place when AI can process and analyze vast amounts of personal data?

## Conclusion

The AI landscape of 2025 will be characterized by systems that are more capable, more accessible, and more deeply integrated into our daily lives than ever before. The future of AI is not just about smarter machines, but about how these technologies can help us build a better world.`,
			CoverImage:   "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Technology",
			Tags:         []string{"ai", "technology", "future", "innovation"},
			Author:       models.Author{ID: 1, Name: "Alex Chen", Bio: "Tech journalist and AI researcher"},
			CreatedAt:    ts("2023-06-15T09:24:00Z"),
			UpdatedAt:    ts("2023-06-15T09:24:00Z"),
			ReadTime:     8,
			CommentCount: 24,
			Featured:     true,
		},
		{
			ID:      2,
			Title:   "Sustainable Living: Small Changes with Big Impact",
			Slug:    "sustainable-living-small-changes-big-impact",
			Excerpt: "Discover practical, everyday habits that can significantly reduce your environmental footprint without drastically changing your lifestyle.",
			Content: `# Sustainable Living: Small Changes with Big Impact

In an era of climate change and environmental challenges, many people want to make a difference but feel overwhelmed by the scale of the problem. The good news is that small, consistent changes in our daily habits can collectively create significant positive impact.

## Rethinking Consumption

One of the most powerful ways to reduce your environmental footprint is to simply buy less. Before making a purchase, ask yourself if you truly need the item, if it will provide lasting value, and if there are more sustainable alternatives.

## Food Choices Matter

What we eat has enormous environmental implications. Consider reducing meat consumption, particularly beef, which has a disproportionately high carbon footprint. Additionally, buying local and seasonal produce reduces transportation emissions and often results in fresher, more nutritious food.

## Conclusion

Sustainable living doesn't require a complete lifestyle overhaul. Remember that perfection isn't the goal, progress is. Every positive choice, no matter how small, is a step in the right direction.`,
			CoverImage:   "https://images.pexels.com/photos/3698534/pexels-photo-3698534.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Lifestyle",
			Tags:         []string{"sustainability", "environment", "eco-friendly", "green-living"},
			Author:       models.Author{ID: 2, Name: "Maya Johnson", Bio: "Environmental advocate and minimalist lifestyle blogger"},
			CreatedAt:    ts("2023-06-10T14:30:00Z"),
			UpdatedAt:    ts("2023-06-10T14:30:00Z"),
			ReadTime:     6,
			CommentCount: 18,
		},
		{
			ID:      3,
			Title:   "Mindfulness Meditation: A Beginner's Guide",
			Slug:    "mindfulness-meditation-beginners-guide",
			Excerpt: "Learn the basics of mindfulness meditation and how it can help reduce stress, improve focus, and enhance overall well-being.",
			Content: `# Mindfulness Meditation: A Beginner's Guide

In our fast-paced, constantly connected world, finding moments of peace can seem impossible. Mindfulness meditation offers a practical approach to cultivating awareness and presence in daily life, with benefits ranging from stress reduction to improved emotional regulation.

## What is Mindfulness?

At its core, mindfulness is the practice of paying attention to the present moment with curiosity and without judgment. It involves observing your thoughts, feelings, bodily sensations, and environment without getting caught up in them.

## Getting Started: A Simple 5-Minute Practice

Begin by finding a comfortable seated position. Close your eyes or lower your gaze. Focus your attention on the physical sensations of breathing. When your mind inevitably wanders (and it will), gently redirect your focus back to your breath without criticizing yourself.

## Conclusion

Remember that mindfulness is a skill that develops with practice. The key is consistency: even five minutes of daily practice can yield significant benefits over time.`,
			CoverImage:   "https://images.pexels.com/photos/3560044/pexels-photo-3560044.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Health",
			Tags:         []string{"meditation", "mindfulness", "mental-health", "wellness"},
			Author:       models.Author{ID: 3, Name: "David Park", Bio: "Meditation teacher and wellness coach"},
			CreatedAt:    ts("2023-06-05T11:15:00Z"),
			UpdatedAt:    ts("2023-06-05T11:15:00Z"),
			ReadTime:     5,
			CommentCount: 12,
		},
		{
			ID:      4,
			Title:   "Remote Work: Boosting Productivity While Maintaining Balance",
			Slug:    "remote-work-productivity-balance",
			Excerpt: "Strategies for maximizing productivity and maintaining work-life boundaries in a remote or hybrid work environment.",
			Content: `# Remote Work: Boosting Productivity While Maintaining Balance

The landscape of work has fundamentally shifted in recent years, with remote and hybrid arrangements becoming the norm for many knowledge workers. While this flexibility offers numerous benefits, it also presents unique challenges for productivity and work-life balance.

## Creating a Dedicated Workspace

Even if you don't have a separate home office, designating a specific area for work helps create psychological boundaries between professional and personal life. When possible, avoid working from your bed or couch, as these areas are associated with relaxation.

## Establishing a Routine

Without the structure of a traditional office environment, creating and keeping a consistent routine becomes essential. Start and end your workday at the same times, incorporate regular breaks, and include transitions that help you mentally shift between "work mode" and "home mode".

## Conclusion

Remote work offers unprecedented flexibility, but realizing its full potential requires intentionality and self-awareness. By creating supportive structures and boundaries, you can remain productive while protecting your well-being in this new work paradigm.`,
			CoverImage:   "https://images.pexels.com/photos/4050315/pexels-photo-4050315.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Business",
			Tags:         []string{"remote-work", "productivity", "work-life-balance", "career"},
			Author:       models.Author{ID: 4, Name: "Sophia Rodriguez", Bio: "Workplace strategist and productivity consultant"},
			CreatedAt:    ts("2023-06-01T08:45:00Z"),
			UpdatedAt:    ts("2023-06-01T08:45:00Z"),
			ReadTime:     7,
			CommentCount: 9,
		},
		{
			ID:      5,
			Title:   "The Rise of Immersive Art Experiences",
			Slug:    "rise-of-immersive-art-experiences",
			Excerpt: "How technology is transforming traditional art forms and creating new ways for audiences to engage with creative works.",
			Content: `# The Rise of Immersive Art Experiences

Traditional art viewing has typically involved quiet contemplation of static works in hushed gallery spaces. But a new paradigm is emerging, one where audiences don't just observe art but physically enter and interact with it through immersive experiences.

## Beyond the White Cube

Immersive art installations break down the barriers between viewer and artwork, inviting participants to engage with creative works using multiple senses. These experiences often combine visual elements with sound, movement, touch, and sometimes even scent.

## Technology as an Artistic Medium

Digital tools have dramatically expanded the possibilities for immersive art. Projection mapping allows artists to transform any surface into a dynamic canvas. Virtual and augmented reality technologies create entirely new worlds or overlay digital elements onto physical spaces.

## Conclusion

Immersive art experiences represent a significant evolution in how we create and consume creative works. By engaging audiences in new ways and blurring the boundaries between disciplines, these innovative formats are reshaping our understanding of what art can be.`,
			CoverImage:   "https://images.pexels.com/photos/2110951/pexels-photo-2110951.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Culture",
			Tags:         []string{"art", "technology", "digital", "immersive"},
			Author:       models.Author{ID: 5, Name: "Julian West", Bio: "Art critic and digital culture writer"},
			CreatedAt:    ts("2023-05-28T15:20:00Z"),
			UpdatedAt:    ts("2023-05-28T15:20:00Z"),
			ReadTime:     6,
			CommentCount: 15,
		},
		{
			ID:      6,
			Title:   "Blockchain Beyond Cryptocurrency: Real-World Applications",
			Slug:    "blockchain-beyond-cryptocurrency",
			Excerpt: "Exploring how blockchain technology is being applied in supply chain management, healthcare, voting systems, and more.",
			Content: `# Blockchain Beyond Cryptocurrency: Real-World Applications

While blockchain technology first gained prominence as the foundation for Bitcoin and other cryptocurrencies, its potential applications extend far beyond digital currencies. At its core, blockchain offers a secure, transparent, and tamper-resistant system for recording transactions and tracking assets.

## Supply Chain Transparency

By creating an immutable record of a product's journey from origin to consumer, blockchain can verify authenticity, ensure ethical sourcing, and quickly trace contaminated products to their source during recalls.

## Healthcare Data Management

Healthcare organizations are exploring blockchain for secure medical record management. A blockchain-based system could give patients control over their data while ensuring that authorized healthcare providers have access to complete, accurate information.

## Voting Systems

A blockchain-based voting system would create a transparent, verifiable record of votes that is resistant to tampering while potentially increasing participation by enabling secure remote voting.

## Conclusion

As blockchain technology matures beyond its cryptocurrency origins, we're beginning to see its transformative potential across diverse sectors. The unique capabilities of blockchain for creating trust in digital environments make it a technology worth watching closely in the coming years.`,
			CoverImage:   "https://images.pexels.com/photos/844124/pexels-photo-844124.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Category:     "Technology",
			Tags:         []string{"blockchain", "technology", "innovation", "cryptocurrency"},
			Author:       models.Author{ID: 1, Name: "Alex Chen", Bio: "Tech journalist and AI researcher"},
			CreatedAt:    ts("2023-05-22T10:10:00Z"),
			UpdatedAt:    ts("2023-05-22T10:10:00Z"),
			ReadTime:     7,
			CommentCount: 21,
		},
	}
}
