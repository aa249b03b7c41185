package handler

import (
	"event-ticketing/internal/model"

	"github.com/gin-gonic/gin"
)

const requesterKey = "requester"

// RequesterMiddleware 讀取外部 authorizer 附加的宣告標頭（sub / email / name）。
// 服務本身不驗證 token，信任前置的閘道層
func RequesterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := model.Requester{
			UserID: c.GetHeader("X-User-Id"),
			Name:   c.GetHeader("X-User-Name"),
			Email:  c.GetHeader("X-User-Email"),
		}
		if requester.UserID != "" {
			c.Set(requesterKey, requester)
		}
		c.Next()
	}
}

// RequesterFrom 取出請求的使用者宣告，不存在時回傳 false
func RequesterFrom(c *gin.Context) (model.Requester, bool) {
	value, exists := c.Get(requesterKey)
	if !exists {
		return model.Requester{}, false
	}
	requester, ok := value.(model.Requester)
	return requester, ok
}
