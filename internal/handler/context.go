package handler

import "github.com/gin-gonic/gin"

// currentIdentity pulls the authenticated user's id and role out of the gin
// context, where the auth middleware put them.
func currentIdentity(c *gin.Context) (uint, string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, "", false
	}
	role, exists := c.Get("role")
	if !exists {
		return 0, "", false
	}
	return userID.(uint), role.(string), true
}
