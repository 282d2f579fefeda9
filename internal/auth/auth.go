package auth

// Authenticator は資格情報の検証だけを約束する。
// 今は共有シークレットの完全一致だが、別方式に差し替えられるようにしておく。
type Authenticator interface {
	Authenticate(credential string) bool
}

type StaticKeyAuthenticator struct {
	key string
}

func NewStaticKeyAuthenticator(key string) *StaticKeyAuthenticator {
	return &StaticKeyAuthenticator{key: key}
}

// 空の資格情報は常に拒否。
func (a *StaticKeyAuthenticator) Authenticate(credential string) bool {
	return credential != "" && credential == a.key
}
