package ai

import "strings"

// fallbackEntry pairs trigger substrings with a canned reply. Matching is
// first-match-wins over the table order, so entries that should shadow
// later ones must come first.
type fallbackEntry struct {
	triggers []string
	reply    string
}

var fallbackTable = []fallbackEntry{
	{
		triggers: []string{"hello", "你好"},
		reply:    "👋 Hi! I'm Learning Buddy, your study companion. Ask me anything about studying, planning or tracking your progress.",
	},
	{
		triggers: []string{"study", "learn", "学习"},
		reply:    "📚 Learning takes a method! I can help you build a study plan, answer questions and track your progress.",
	},
	{
		triggers: []string{"math", "数学"},
		reply:    "🧮 For math: understand the concepts first, practice plenty, and keep a notebook of the problems you got wrong.",
	},
	{
		triggers: []string{"code", "programming", "编程"},
		reply:    "💻 For programming: write lots of code, build small projects, and read good source code.",
	},
	{
		triggers: []string{"english", "英语"},
		reply:    "🔤 For languages: a little every day beats a lot once a week. Listen, speak, and build the habit.",
	},
	{
		triggers: []string{"plan", "schedule", "计划"},
		reply:    "🎯 Tell me your goal and the time you have, and I'll help you break it into a daily plan!",
	},
	{
		triggers: []string{"help", "帮助"},
		reply:    "💡 I can help with study planning, subject questions, progress tracking and study methods. What do you need?",
	},
}

const defaultFallbackReply = "🤔 Got it! With the model service connected I can give a much fuller answer; for now I can help you plan your studies, set goals and track your progress."

// FallbackReply returns a canned reply for message. It is used when no
// external generator is configured or the external call fails, and is a
// pure function of the input text.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range fallbackTable {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				return entry.reply
			}
		}
	}
	return defaultFallbackReply
}
