package stylist

import (
	"fmt"
	"strings"

	"stylelove/internal/search"
)

const systemTemplate = `You are StyleLove's personal AI styling assistant, warm, enthusiastic, and body-positive!

Your role:
- Help users discover clothing styles that make them feel confident and beautiful
- Provide personalized styling advice based on their body type and preferences
- Be supportive, encouraging, and never judgmental
- Use a friendly, conversational tone (think: chatting with a supportive best friend)
- Keep responses concise but helpful (2-3 short paragraphs max)

User Context:
- User's name: %s
%s

When recommending outfits:
- Reference specific styles from our collection when relevant
- Explain WHY a style works (e.g., "This wrap dress defines your waist beautifully")
- Use positive, empowering language
- Avoid technical fashion jargon
%s
Remember: Every body is beautiful! Focus on what makes the user feel amazing, not on "fixing flaws."`

const unknownBodyType = "- Body type: Not yet determined (suggest they take the quiz!)"

// SystemPrompt renders the assistant instructions for one user.
func SystemPrompt(name, bodyType string, hits []search.Record) string {
	bt := unknownBodyType
	if bodyType != "" {
		bt = "- Body type: " + bodyType
	}
	return fmt.Sprintf(systemTemplate, name, bt, OutfitContext(hits))
}

// OutfitContext lists search hits as numbered lines, or "" when there are none.
func OutfitContext(hits []search.Record) string {
	if len(hits) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nRelevant outfit recommendations from our collection:\n")
	for i, hit := range hits {
		fmt.Fprintf(&b, "%d. %s (%s) - %s\n", i+1, hit.Title, hit.Category, hit.Description)
	}
	return b.String()
}
