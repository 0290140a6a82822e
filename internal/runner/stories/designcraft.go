package stories

import (
	"time"

	"github.com/conscient/onboarding-agent/internal/runner"
	"github.com/conscient/onboarding-agent/internal/types"
)

// DesignCraft uncovers a RERA penalty and lukewarm references on an MSME
// interior contractor; it runs without checkpoints and lands in the senior
// review queue with status "Needs Review".
func DesignCraft() runner.Story {
	return runner.Story{
		CaseID:      "VND_004",
		CaseName:    "DesignCraft Interiors - Interior Fit-out Registration",
		FinalStatus: types.StatusNeedsReview,
		StepDelay:   2200 * time.Millisecond,
		KeyDetails: map[string]string{
			"vendorName":       "DesignCraft Interiors Pvt Ltd",
			"gstin":            "07AABCD8901R1ZQ",
			"pan":              "AABCD8901R",
			"materialCategory": "Interior Design & Fit-out",
			"project":          "Goa Luxury Villas, Candolim",
			"applicationRef":   "VRF-2025-0215",
			"contactPerson":    "Neha Kapoor",
			"annualRevenue":    "Rs. 12 Crore",
		},
		Steps: []runner.Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Receiving vendor registration package...",
				ResultTitle:     "Vendor application received - DesignCraft Interiors Pvt Ltd",
				Reasoning: []string{
					"Document: designcraft_vendor_application.pdf",
					"Application Reference: VRF-2025-0215",
					"Vendor: DesignCraft Interiors Private Limited",
					"Category: Interior Design & Fit-out",
				},
				Artifacts: []types.Artifact{
					{ID: "art-reg", Type: types.ArtifactFile, Label: "DesignCraft Vendor Application", PDFPath: "/data/designcraft_vendor_application.pdf"},
				},
			},
			{
				ID:              "step-2",
				ProcessingTitle: "Extracting firm details from application...",
				ResultTitle:     "Firm details extracted - MSME medium enterprise, 85 employees",
				Reasoning: []string{
					"Company: DesignCraft Interiors Private Limited",
					"GSTIN: 07AABCD8901R1ZQ | PAN: AABCD8901R",
					"MSME Registration: UDYAM-DL-07-0045678 (Medium Enterprise)",
					"Team: 85 employees (45 designers, 40 execution)",
					"Annual revenue: Rs. 12 Crore",
					"Proposed project: Conscient Goa Luxury Villas, Candolim",
				},
			},
			{
				ID:              "step-3",
				ProcessingTitle: "Validating GSTIN on GST portal...",
				ResultTitle:     "GSTIN verified - Active status, Delhi registration",
				Reasoning: []string{
					"GSTIN 07AABCD8901R1ZQ queried on gst.gov.in",
					"Status: Active",
					"State: Delhi - matches registered address",
					"Last return: GSTR-3B December 2024 (filed on time)",
					"No discrepancies",
				},
			},
			{
				ID:              "step-4",
				ProcessingTitle: "Verifying PAN and company incorporation records...",
				ResultTitle:     "PAN and CIN verified - Incorporated 2015, active company",
				Reasoning: []string{
					"PAN AABCD8901R validated",
					"CIN U74999DL2015PTC280456 verified on MCA portal",
					"Incorporated: 2015 in Delhi",
					"Status: Active",
					"No pending NCLT cases",
				},
			},
			{
				ID:              "step-5",
				ProcessingTitle: "Running financial health assessment...",
				ResultTitle:     "Financial health: MODERATE - Revenue Rs. 12 Cr, thin margins (8.3%)",
				Reasoning: []string{
					"Annual revenue: Rs. 12 Crore (FY24) - meets minimum threshold",
					"Net profit margin: 8.3% (industry average: 12%)",
					"No external credit rating available (MSME)",
					"Debt-to-equity: 0.78 (moderate leverage)",
					"Revenue growth: 14% YoY (positive trend)",
					"Score: 15/25 (Financial Health - below average margins)",
				},
			},
			{
				ID:              "step-6",
				ProcessingTitle: "Running RERA compliance check across state portals...",
				ResultTitle:     "WARNING: RERA PENALTY FOUND - UP RERA penalty of Rs. 8 Lakh (2023)",
				Reasoning: []string{
					"Searched UP RERA, Haryana RERA, Goa RERA, Delhi RERA portals",
					"PENALTY FOUND on UP RERA portal",
					"Complaint: UPRERA/C-2023/4421",
					"Project: Supertech Cape Town, Sector 74, Noida",
					"Issue: Quality defects in interior work for 120 units",
					"Details: Paint peeling, improper flooring, non-compliant electrical fittings",
					"Penalty: Rs. 8,00,000 (paid August 2023)",
					"Project delayed: 6 months due to rework requirements",
					"Score: 8/20 (RERA Compliance - major penalty in history)",
				},
				Artifacts: []types.Artifact{
					{ID: "art-rera", Type: types.ArtifactJSON, Label: "RERA Penalty Details", Data: map[string]any{
						"portal":              "UP RERA (rera.up.gov.in)",
						"complaint_number":    "UPRERA/C-2023/4421",
						"project":             "Supertech Cape Town, Sector 74, Noida",
						"respondent":          "DesignCraft Interiors Pvt Ltd",
						"category":            "Quality Defects + Project Delay",
						"description":         "Interior fit-out work in 120 units showed quality defects - paint peeling, improper flooring, non-compliant electrical fittings. Project delayed 6 months.",
						"penalty":             "Rs. 8,00,000",
						"order_date":          "18/07/2023",
						"compliance":          "Penalty paid on 22/08/2023",
						"adjudicating_officer": "Shri R.K. Verma, Member, UP RERA",
					}},
					{ID: "art-rera-video", Type: types.ArtifactVideo, Label: "UP RERA Portal - Penalty Search Recording", VideoPath: "/data/vnd_004_rera_penalty.webm"},
				},
			},
			{
				ID:              "step-7",
				ProcessingTitle: "Analyzing penalty details and impact...",
				ResultTitle:     "Penalty analysis: Quality issues on 120-unit project, 6-month delay, Rs. 8L fine",
				Reasoning: []string{
					"Penalty is from July 2023 (18 months ago)",
					"Issue was quality-related, not fraud or non-compliance",
					"Vendor paid the penalty promptly (within 35 days)",
					"120-unit project is comparable scale to Goa villas project",
					"Quality defects included: paint, flooring, electrical - core interior work",
					"6-month delay is significant for a residential project",
					"Risk: Similar quality issues could affect Goa luxury villas",
				},
			},
			{
				ID:              "step-8",
				ProcessingTitle: "Cross-referencing client references...",
				ResultTitle:     "References: 2 of 3 report 'Satisfactory' (not 'Excellent') - lukewarm feedback",
				Reasoning: []string{
					"Reference 1: Supertech Ltd - 'Satisfactory work but timeline overruns'",
					"Reference 2: DLF Ltd - 'Good quality, on-time delivery'",
					"Reference 3: Godrej Properties - 'Satisfactory, work in progress'",
					"Only 1 of 3 references is strongly positive (DLF)",
					"Supertech reference aligns with RERA penalty findings",
					"Score: 5/10 (References - below expectation for luxury project)",
				},
			},
			{
				ID:              "step-9",
				ProcessingTitle: "Calculating comprehensive vendor risk score...",
				ResultTitle:     "Risk Score: 54/100 - MEDIUM-HIGH - Flagged for senior procurement review",
				Reasoning: []string{
					"GST Status: 20/20 (Active, no issues)",
					"Financial Health: 15/25 (Thin margins, no credit rating)",
					"RERA Compliance: 8/20 (Rs. 8L penalty, quality defects)",
					"Insurance: 0/15 (ISO pending, no specific COI submitted yet)",
					"References: 5/10 (Lukewarm - 2/3 only 'Satisfactory')",
					"Certifications: 6/10 (ISO 9001 application pending, not certified)",
					"TOTAL: 54/100 - MEDIUM-HIGH RISK",
					"Auto-escalated to senior procurement review queue",
				},
				Artifacts: []types.Artifact{
					{ID: "art-risk", Type: types.ArtifactJSON, Label: "Complete Vendor Risk Assessment", Data: map[string]any{
						"vendor":        "DesignCraft Interiors Pvt Ltd",
						"overall_score": 54,
						"risk_rating":   "MEDIUM-HIGH",
						"breakdown": map[string]any{
							"gst_status":       "20/20",
							"financial_health": "15/25",
							"rera_compliance":  "8/20",
							"insurance":        "0/15",
							"references":       "5/10",
							"certifications":   "6/10",
						},
						"flags": []any{
							"RERA penalty (2023) - quality defects",
							"Thin margins (8.3% vs 12% industry avg)",
							"No ISO 9001 certification yet",
							"Lukewarm references (2/3 satisfactory only)",
						},
						"recommendation": "SENIOR_REVIEW_REQUIRED",
						"reviewer":       "VP Procurement - Conscient Infrastructure",
					}},
				},
			},
			{
				ID:              "step-10",
				ProcessingTitle: "Flagging for senior procurement review with complete findings...",
				ResultTitle:     "Escalated to Needs Review - Full findings submitted to senior procurement",
				Reasoning: []string{
					"Case escalated to VP Procurement review queue",
					"Complete package includes:",
					"- Vendor application and all documents",
					"- GST, PAN, CIN verification results",
					"- RERA penalty details with UP RERA recording",
					"- Financial health assessment",
					"- Reference check summary",
					"- Risk score breakdown (54/100)",
					"Decision options for reviewer:",
					"A) Approve with enhanced monitoring",
					"B) Request additional due diligence",
					"C) Reject vendor application",
				},
			},
		},
	}
}
