package response

// PreferenceResponse carries the hosted checkout URL. init_point is the
// field name Mercado Pago itself uses, kept verbatim for the frontend.
type PreferenceResponse struct {
	InitPoint string `json:"init_point"`
}

func FromInitPoint(url string) PreferenceResponse {
	return PreferenceResponse{InitPoint: url}
}
