package entities

// DossierSeed is a dossier the deriver decided an order needs, before it is
// assigned an id and persisted.
type DossierSeed struct {
	Type   DossierType
	Status DossierStatus
}

// canonical creation order; also makes derivation independent of line item
// ordering.
var derivedTypeOrder = []DossierType{
	DossierTypeShipping,
	DossierTypeAdminEnedis,
	DossierTypeAdminConsuel,
	DossierTypeInstallation,
}

// DeriveDossiers decides which dossiers to create for an order from its line
// items' product categories:
//   - any physical category (turbine, inverter, accessory) -> one shipping
//     dossier, however many physical items there are
//   - administrative -> one admin_enedis AND one admin_consuel
//   - installation -> one installation dossier
//
// Items without a category contribute nothing; an order with no matching
// categories derives an empty set. Pure: persistence is the caller's job.
func DeriveDossiers(items []OrderItem) []DossierSeed {
	needed := map[DossierType]bool{}

	for _, item := range items {
		switch {
		case item.Category == "":
			continue
		case IsPhysicalCategory(item.Category):
			needed[DossierTypeShipping] = true
		case item.Category == CategoryAdministrative:
			needed[DossierTypeAdminEnedis] = true
			needed[DossierTypeAdminConsuel] = true
		case item.Category == CategoryInstallation:
			needed[DossierTypeInstallation] = true
		}
	}

	seeds := make([]DossierSeed, 0, len(needed))
	for _, t := range derivedTypeOrder {
		if !needed[t] {
			continue
		}
		// Initial status always comes from the rule table, never a literal.
		initial, err := InitialStatus(t)
		if err != nil {
			continue
		}
		seeds = append(seeds, DossierSeed{Type: t, Status: initial})
	}
	return seeds
}
