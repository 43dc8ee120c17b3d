package seo

import "github.com/SayaAndy/saya-today-article-schema/internal/structured"

func GenerateFAQSchema(faqs []structured.FAQ) Node {
	questions := make([]Node, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, Node{
			"@type": TypeQuestion,
			"name":  faq.Question,
			"acceptedAnswer": Node{
				"@type": TypeAnswer,
				"text":  faq.Answer,
			},
		})
	}
	return Node{
		"@type":      TypeFAQPage,
		"mainEntity": questions,
	}
}

// GenerateHowToSchema numbers steps from 1 in the order given.
func GenerateHowToSchema(steps []structured.HowToStep, title string) Node {
	nodes := make([]Node, 0, len(steps))
	for i, step := range steps {
		nodes = append(nodes, Node{
			"@type":    TypeHowToStep,
			"position": i + 1,
			"name":     step.Name,
			"text":     step.Text,
		})
	}
	return Node{
		"@type": TypeHowTo,
		"name":  title,
		"step":  nodes,
	}
}
