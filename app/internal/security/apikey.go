package security

// APIKeyPolicy gates requests behind a configured key allow-list.
// Keys are compared by exact string membership, no hashing or expiry.
type APIKeyPolicy struct {
	Require     bool
	AllowedKeys []string
}

// Check validates a request-supplied key. When the policy is disabled it
// always passes. Otherwise the returned message distinguishes a missing
// key, an empty server-side allow-list, and an invalid key.
func (p APIKeyPolicy) Check(key string) (ok bool, message string) {
	if !p.Require {
		return true, ""
	}

	if key == "" {
		return false, "缺少 API 密钥，请在请求头中添加 X-API-Key"
	}
	if len(p.AllowedKeys) == 0 {
		return false, "服务器未配置允许的 API 密钥，请联系管理员"
	}
	for _, k := range p.AllowedKeys {
		if k == key {
			return true, ""
		}
	}
	return false, "无效的 API 密钥"
}
