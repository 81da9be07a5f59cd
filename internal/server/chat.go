package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/platewise/platewise/internal/model"
)

// chatRequest is the body of POST /api/food/chat.
type chatRequest struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// chatResponse is the body of POST /api/food/chat.
type chatResponse struct {
	Response string `json:"response"`
	DemoMode bool   `json:"demo_mode"`
}

// demoChatReplies are location-templated canned lines served in demo mode.
var demoChatReplies = []string{
	"In %s, people are loving North Indian cuisine today. Try butter chicken!",
	"Based on weather in %s, I recommend light salads or fresh juices.",
	"Popular in %s right now: street food like pani puri and bhel puri.",
	"For %s, spicy options are trending today - how about some biryani?",
	"In %s, healthy options like quinoa bowls are getting great reviews.",
}

// moodWords trigger the empathetic chat header.
var moodWords = []string{"sad", "depressed", "lonely"}

func (s *Server) handleFoodChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Location == "" {
		req.Location = s.cfg.Pipeline.DefaultLocation
	}

	if s.cfg.DemoMode() {
		reply := demoChatReplies[s.pick(len(demoChatReplies))]
		respond(w, http.StatusOK, chatResponse{
			Response: fmt.Sprintf(reply, req.Location),
			DemoMode: true,
		})
		return
	}

	st := s.food.Run(r.Context(), "user", req.Location)
	respond(w, http.StatusOK, chatResponse{
		Response: formatChatReply(req.Message, st.Final),
		DemoMode: st.DemoMode,
	})
}

// formatChatReply renders the top three recommendations as a chat message,
// switching to an encouraging header when the user sounds down.
func formatChatReply(message string, recs []model.Recommendation) string {
	lower := strings.ToLower(message)
	header := "Here are my recommendations:\n\n"
	for _, word := range moodWords {
		if strings.Contains(lower, word) {
			header = "Here's what I recommend to brighten your day:\n\n"
			break
		}
	}

	var b strings.Builder
	b.WriteString(header)
	for i, rec := range recs {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, rec.DishName, rec.Cuisine)
		reason := rec.Reason
		if reason == "" {
			reason = "Perfect for you!"
		}
		fmt.Fprintf(&b, "   %s\n", reason)
		for _, tag := range rec.Tags {
			if tag == "comfort" || tag == "comfort-food" {
				b.WriteString("   Great for mood boosting\n")
				break
			}
		}
	}
	return b.String()
}
