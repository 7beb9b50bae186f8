package entity

// Tier (nivel de socio) is a loyalty level unlocked by a visit-count
// threshold. Ordering by RequiredVisits is a backend concern.
type Tier struct {
	ID             int64  `json:"id"`
	Name           string `json:"nombre"`
	RequiredVisits int    `json:"visitasRequeridas"`
	Benefits       string `json:"descripcionBeneficios"`
}
