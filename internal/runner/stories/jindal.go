package stories

import (
	"github.com/conscient/onboarding-agent/internal/runner"
	"github.com/conscient/onboarding-agent/internal/types"
)

// JindalSteel surfaces a suspended GSTIN and an address mismatch, then
// blocks at step-5 until a procurement manager approves manual
// re-verification via the APPROVE_REVERIFICATION signal.
func JindalSteel() runner.Story {
	return runner.Story{
		CaseID:   "VND_002",
		CaseName: "Jindal Steel - TMT Bar Supplier Registration",
		KeyDetails: map[string]string{
			"vendorName":       "Jindal Steel & Power Ltd",
			"gstin":            "04AABCJ1234R1ZP",
			"pan":              "AABCJ1234R",
			"materialCategory": "Steel & TMT Bars",
			"project":          "Heritage Max, Sector 102, Gurgaon",
			"applicationRef":   "VRF-2025-0203",
			"contactPerson":    "Vikram Singh Rathore",
		},
		Steps: []runner.Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Receiving vendor registration package...",
				ResultTitle:     "Vendor registration package received - Jindal Steel & Power",
				Reasoning: []string{
					"Document: jindal_steel_vendor_application.pdf",
					"Application Reference: VRF-2025-0203",
					"Vendor: Jindal Steel & Power Limited",
					"Category: Steel & TMT Bars",
				},
				Artifacts: []types.Artifact{
					{ID: "art-reg", Type: types.ArtifactFile, Label: "Jindal Steel Vendor Application", PDFPath: "/data/jindal_steel_vendor_application.pdf"},
				},
			},
			{
				ID:              "step-2",
				ProcessingTitle: "Extracting vendor details from application...",
				ResultTitle:     "Vendor details extracted - GSTIN, PAN, banking details captured",
				Reasoning: []string{
					"Company: Jindal Steel & Power Limited",
					"GSTIN: 04AABCJ1234R1ZP | PAN: AABCJ1234R",
					"Submitted address: Jindal Centre, 12 Bhikaiji Cama Place, New Delhi",
					"Supply address: Raipur Plant, Chhattisgarh",
					"Products: TMT Bars Fe-500D, Fe-550D, Structural Steel",
				},
			},
			{
				ID:              "step-3",
				ProcessingTitle: "Validating GSTIN on GST portal...",
				ResultTitle:     "CRITICAL: GSTIN STATUS SUSPENDED - Address mismatch detected",
				Reasoning: []string{
					"GSTIN 04AABCJ1234R1ZP queried on gst.gov.in",
					"STATUS: SUSPENDED since 15/11/2024",
					"Suspension reason: Non-filing of returns for consecutive periods",
					"Last return filed: GSTR-3B September 2024 (3 months overdue)",
					"REGISTERED ADDRESS: Village Patrapali, Raigarh, Chhattisgarh",
					"APPLICATION ADDRESS: Bhikaiji Cama Place, New Delhi",
					"ADDRESS MISMATCH: Chhattisgarh vs Delhi - DISCREPANCY FOUND",
				},
				Artifacts: []types.Artifact{
					{ID: "art-gst", Type: types.ArtifactJSON, Label: "GST Mismatch Report", Data: map[string]any{
						"gstin":              "04AABCJ1234R1ZP",
						"legal_name":         "JINDAL STEEL & POWER LIMITED",
						"status":             "SUSPENDED",
						"suspension_date":    "15/11/2024",
						"reason":             "Non-filing of returns",
						"registered_address": "Village Patrapali, Raigarh, Chhattisgarh - 496001",
						"submitted_address":  "Jindal Centre, 12 Bhikaiji Cama Place, New Delhi - 110066",
						"address_match":      false,
						"flags":              []any{"GSTIN Suspended", "Address Mismatch", "Returns Overdue"},
					}},
					{ID: "art-gst-video", Type: types.ArtifactVideo, Label: "GST Portal - Suspended Status Recording", VideoPath: "/data/vnd_002_gst_suspended.webm"},
				},
			},
			{
				ID:              "step-4",
				ProcessingTitle: "Running background check on vendor...",
				ResultTitle:     "Background check: Tax compliance notice found from Nov 2024",
				Reasoning: []string{
					"Tax compliance notice issued by CGST Raigarh on 10/11/2024",
					"Reason: Failure to file GSTR-1 and GSTR-3B for Oct-Nov 2024",
					"No NCLT cases pending",
					"No criminal proceedings found",
					"Company is publicly listed (NSE: JINDALSTEL) - financials available",
				},
			},
			{
				ID:              "step-5",
				ProcessingTitle: "Flagging discrepancies for procurement review...",
				ResultTitle:     "ACTION REQUIRED: GSTIN suspended, address mismatch - Approve manual re-verification or reject?",
				Reasoning: []string{
					"Two critical issues found requiring human decision:",
					"1. GSTIN Status: SUSPENDED - vendor cannot issue valid GST invoices",
					"2. Address Mismatch: Application claims Delhi, GST shows Chhattisgarh",
					"3. Tax compliance notice active since November 2024",
					"Options: (A) Approve manual re-verification with updated documents, (B) Reject vendor application",
					"Note: Jindal Steel is a major supplier - rejection may impact project timeline",
				},
				Artifacts: []types.Artifact{
					{ID: "art-flags", Type: types.ArtifactJSON, Label: "Discrepancy Summary", Data: map[string]any{
						"critical_flags": []any{"GSTIN Suspended", "Address Mismatch (Delhi vs Chhattisgarh)", "Tax Compliance Notice Active"},
						"risk_level":     "HIGH",
						"impact":         "Cannot issue valid GST invoices until resolved",
						"recommendation": "Request updated GSTIN from Delhi/Haryana registration",
						"timeline_risk":  "Heritage Max project may face 2-week delay if vendor rejected",
					}},
				},
				Checkpoint: &runner.Checkpoint{
					Signal:       ApproveReverification,
					ResumeStatus: "Approved: Proceeding with manual re-verification",
				},
			},
			{
				ID:              "step-6",
				ProcessingTitle: "Initiating manual re-verification with corrected documents...",
				ResultTitle:     "Re-verification initiated - Vendor providing updated Haryana GSTIN",
				Reasoning: []string{
					"Procurement manager approved manual re-verification",
					"Vendor contacted and informed of GSTIN discrepancy",
					"Vendor confirms: Haryana unit has separate GSTIN (06AAHCJ5678R1ZN)",
					"Updated GSTIN provided for Manesar warehouse operations",
					"Re-verification in progress with corrected number",
				},
			},
			{
				ID:              "step-7",
				ProcessingTitle: "Re-validating corrected GSTIN...",
				ResultTitle:     "Corrected GSTIN verified - 06AAHCJ5678R1ZN is ACTIVE in Haryana",
				Reasoning: []string{
					"New GSTIN 06AAHCJ5678R1ZN queried on gst.gov.in",
					"Status: ACTIVE",
					"State: Haryana - matches project location",
					"Address: IMT Manesar, Gurgaon - verified",
					"Last return: GSTR-3B December 2024 (filed on time)",
					"Original suspended GSTIN was for Chhattisgarh plant - not relevant",
				},
			},
			{
				ID:              "step-8",
				ProcessingTitle: "Generating conditional approval with review terms...",
				ResultTitle:     "Conditional approval granted - 90-day probationary period with quarterly review",
				Reasoning: []string{
					"Vendor approved with conditions due to initial GSTIN discrepancy",
					"Condition 1: 90-day probationary review",
					"Condition 2: Quarterly GST filing verification",
					"Condition 3: First 3 invoices require manual cross-check",
					"Vendor code: VND-JSP-2025-0203 (Probationary)",
					"Risk score adjusted: 65/100 (MEDIUM) due to initial flags",
				},
				Artifacts: []types.Artifact{
					{ID: "art-approval", Type: types.ArtifactJSON, Label: "Conditional Approval Terms", Data: map[string]any{
						"vendor":      "Jindal Steel & Power Ltd",
						"vendor_code": "VND-JSP-2025-0203",
						"status":      "PROBATIONARY",
						"risk_score":  65,
						"conditions": []any{
							"90-day probationary review",
							"Quarterly GST filing verification",
							"Manual cross-check on first 3 invoices",
							"Re-assessment at 90 days",
						},
						"corrected_gstin": "06AAHCJ5678R1ZN",
						"next_review":     "April 12, 2025",
					}},
				},
			},
		},
	}
}
