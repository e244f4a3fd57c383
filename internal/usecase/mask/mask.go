package mask

// PayoutDetails masks sensitive payout fields for customer-facing reads.
// Empty values stay empty, short values become a fixed mask, longer values
// keep two characters at each end. The operator view never goes through here.
func PayoutDetails(details map[string]string) map[string]string {
	masked := make(map[string]string, len(details))
	for key, value := range details {
		masked[key] = maskValue(value)
	}
	return masked
}

func maskValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:2] + "****" + value[len(value)-2:]
}
