package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/services"
)

// Chatbot always answers 200 with a response string once a message is
// present; failures are reported inside the text.
func (h *Handler) Chatbot(c *gin.Context) {
	msg := formValue(c, "message")
	if msg == "" {
		badRequest(c, "Message is required")
		return
	}

	reply := h.bot.Reply(c.Request.Context(), services.ChatRequest{
		Message:     msg,
		Origin:      formValue(c, "startPoint"),
		Destination: formValue(c, "destination"),
		StartDate:   formValue(c, "startDate"),
		EndDate:     formValue(c, "endDate"),
	})
	c.JSON(http.StatusOK, gin.H{"response": reply})
}
