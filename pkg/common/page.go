package common

// PageReq is the shared limit/offset window for list endpoints.
type PageReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

const maxLimit = 100

func (p *PageReq) Normalize() {
	if p.Limit <= 0 || p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
