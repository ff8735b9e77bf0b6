package handlers

import (
	"fmt"
	"net/http"

	"uptimestatus/app/internal/config"
)

// HandleDocs serves the self-describing API documentation at the root
// route. It reflects the effective configuration and never errors.
func HandleDocs(cfg *config.Config) http.HandlerFunc {
	authentication := "无需认证"
	if cfg.RequireAPIKey {
		authentication = "需要 API 密钥，请在请求头中添加 X-API-Key"
	}

	docs := map[string]any{
		"name":        "Uptime Status Public API",
		"version":     "1.0.0",
		"description": "提供公开的监控状态数据 API",
		"endpoints": map[string]any{
			"/api/monitors": map[string]any{
				"method":      "GET",
				"description": "获取所有监控项的状态数据",
				"parameters": map[string]any{
					"days": map[string]any{
						"type":        "number",
						"description": "获取天数（7, 30, 60, 90）",
						"default":     cfg.DefaultDays,
					},
				},
				"headers": map[string]any{
					"X-API-Key": map[string]any{
						"description": "API 密钥（如果启用）",
						"required":    cfg.RequireAPIKey,
					},
				},
				"response": map[string]any{
					"success":   "boolean",
					"data":      "Array<Monitor>",
					"timestamp": "number",
				},
			},
			"/api/stats": map[string]any{
				"method":      "GET",
				"description": "获取全局统计数据",
			},
			"/api/incidents": map[string]any{
				"method":      "GET",
				"description": "获取最近的故障事件",
			},
			"/api/health": map[string]any{
				"method":      "GET",
				"description": "网关运行状态",
			},
		},
		"monitor": map[string]any{
			"id":              "number",
			"name":            "string",
			"url":             "string",
			"status":          "'ok' | 'down' | 'paused' | 'unknown'",
			"average":         "number",
			"daily":           "Array<{ date, uptime, down }>",
			"total":           "{ times, duration }",
			"avgResponseTime": "number | undefined",
		},
		"authentication": authentication,
		"rateLimit":      fmt.Sprintf("每分钟 %d 次请求", cfg.RateLimit),
		"cache":          fmt.Sprintf("缓存时间 %d 秒", int(cfg.CacheTime.Seconds())),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, docs)
	}
}
