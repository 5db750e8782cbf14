package limits

import "math/rand"

var recommendations = []string{
	"💡 Personalize each message for better reply rates",
	"⏰ Best time to send: Tuesday-Thursday, 9-11 AM",
	"🎯 Focus on quality over quantity",
	"📊 Track your reply rates to improve",
	"⚡ Follow up after 3-5 days if no response",
	"🤝 Build genuine connections, not just numbers",
	"📝 Keep messages under 200 characters",
	"🎨 Use templates as starting points, then customize",
}

// Recommendation returns a rotating usage tip.
func Recommendation() string {
	return recommendations[rand.Intn(len(recommendations))]
}
