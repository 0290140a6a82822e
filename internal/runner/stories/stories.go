// Package stories holds the four scripted vendor-onboarding cases that
// animate the demo: a clean approval, a GSTIN suspension needing a human
// go-ahead, an expired insurance certificate gated on an outgoing email, and
// a penalty history escalated to senior review.
package stories

import (
	"github.com/conscient/onboarding-agent/internal/runner"
	"github.com/conscient/onboarding-agent/internal/types"
)

// ApproveReverification is the signal the Jindal story blocks on.
const ApproveReverification = "APPROVE_REVERIFICATION"

// All returns the stories in launch order.
func All() []runner.Story {
	return []runner.Story{
		UltraTech(),
		JindalSteel(),
		Daikin(),
		DesignCraft(),
	}
}

// Find returns the story for a case ID.
func Find(caseID string) (runner.Story, bool) {
	for _, story := range All() {
		if story.CaseID == caseID {
			return story, true
		}
	}
	return runner.Story{}, false
}

// FixtureCases returns the fixed case list written on reset. date is the
// ISO day stamp shown in the UI.
func FixtureCases(date string) types.CaseList {
	return types.CaseList{
		{
			ID: "VND_001", Name: "UltraTech Cement - Cement Supplier Registration",
			Category: "Vendor Onboarding", StockID: "VRF-2025-0187", Year: date,
			Status: types.StatusInProgress, CurrentStatus: "Initializing...",
			VendorName: "UltraTech Cement Ltd", MaterialCategory: "Cement & Concrete",
			Project: "Elaira Residences, Sector 80",
		},
		{
			ID: "VND_002", Name: "Jindal Steel - TMT Bar Supplier Registration",
			Category: "Vendor Onboarding", StockID: "VRF-2025-0203", Year: date,
			Status: types.StatusInProgress, CurrentStatus: "Initializing...",
			VendorName: "Jindal Steel & Power Ltd", MaterialCategory: "Steel & TMT Bars",
			Project: "Heritage Max, Sector 102",
		},
		{
			ID: "VND_003", Name: "Daikin India - HVAC Contractor Registration",
			Category: "Vendor Onboarding", StockID: "CRF-2025-0089", Year: date,
			Status: types.StatusInProgress, CurrentStatus: "Initializing...",
			VendorName: "Daikin Airconditioning India", MaterialCategory: "HVAC Systems",
			Project: "PARQ, Sector 80",
		},
		{
			ID: "VND_004", Name: "DesignCraft Interiors - Interior Fit-out Registration",
			Category: "Vendor Onboarding", StockID: "VRF-2025-0215", Year: date,
			Status: types.StatusInProgress, CurrentStatus: "Initializing...",
			VendorName: "DesignCraft Interiors Pvt Ltd", MaterialCategory: "Interior Design & Fit-out",
			Project: "Goa Luxury Villas, Candolim",
		},
	}
}
