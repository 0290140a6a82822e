package stories

import (
	"github.com/conscient/onboarding-agent/internal/runner"
	"github.com/conscient/onboarding-agent/internal/types"
)

// Daikin finds an expired Certificate of Insurance on a safety-critical HVAC
// contract and blocks at step-7 until the operator sends the drafted request
// email (HTTP email-sent flag, not a named signal).
func Daikin() runner.Story {
	return runner.Story{
		CaseID:   "VND_003",
		CaseName: "Daikin India - HVAC Contractor Registration",
		KeyDetails: map[string]string{
			"vendorName":       "Daikin Airconditioning India Pvt Ltd",
			"gstin":            "06AABCD4567R1ZK",
			"pan":              "AABCD4567R",
			"materialCategory": "HVAC Systems",
			"project":          "PARQ, Sector 80, Gurgaon",
			"applicationRef":   "CRF-2025-0089",
			"contactPerson":    "Amit Deshmukh",
			"contractValue":    "Rs. 15 Crore",
		},
		Steps: []runner.Step{
			{
				ID:              "step-1",
				ProcessingTitle: "Receiving contractor registration package...",
				ResultTitle:     "Contractor registration received - Daikin Airconditioning India",
				Reasoning: []string{
					"Document: daikin_contractor_application.pdf",
					"Application Reference: CRF-2025-0089",
					"Contractor: Daikin Airconditioning India Pvt Ltd",
					"Category: HVAC Systems (Safety-Critical)",
				},
				Artifacts: []types.Artifact{
					{ID: "art-reg", Type: types.ArtifactFile, Label: "Daikin Contractor Application Form", PDFPath: "/data/daikin_contractor_application.pdf"},
				},
			},
			{
				ID:              "step-2",
				ProcessingTitle: "Extracting contractor details from application...",
				ResultTitle:     "Contractor details extracted - License, insurance, capacity captured",
				Reasoning: []string{
					"Company: Daikin Airconditioning India Pvt Ltd",
					"GSTIN: 06AABCD4567R1ZK | PAN: AABCD4567R",
					"License: Class A HVAC Contractor (Haryana PWD)",
					"Project capacity: Up to 500 TR per project",
					"Estimated contract value: Rs. 15 Crore",
					"Services: VRV/VRF, Central AC, Chiller Plants, AMC",
				},
			},
			{
				ID:              "step-3",
				ProcessingTitle: "Validating GSTIN on GST portal...",
				ResultTitle:     "GSTIN verified - Status: ACTIVE, Haryana registration confirmed",
				Reasoning: []string{
					"GSTIN 06AABCD4567R1ZK queried on gst.gov.in",
					"Status: Active (registered since 01/07/2017)",
					"State: Haryana - matches application",
					"Last return: GSTR-3B December 2024 (filed on time)",
					"No discrepancies found",
				},
			},
			{
				ID:              "step-4",
				ProcessingTitle: "Verifying contractor license...",
				ResultTitle:     "License verified - Class A HVAC Contractor, valid Haryana PWD license",
				Reasoning: []string{
					"License type: Class A HVAC Contractor",
					"Issuing authority: Haryana Public Works Department",
					"Valid for projects up to Rs. 50 Crore",
					"Current project (Rs. 15 Cr) within licensed capacity",
					"License renewal due: March 2026",
				},
			},
			{
				ID:              "step-5",
				ProcessingTitle: "Checking Certificate of Insurance...",
				ResultTitle:     "CRITICAL: Insurance EXPIRED - COI lapsed 3 months ago (Sep 30, 2024)",
				Reasoning: []string{
					"Policy: INS-2023-34521 (Bajaj Allianz General Insurance)",
					"Coverage: Rs. 5 Crore - meets minimum for safety-critical",
					"BUT: Policy expired September 30, 2024",
					"Current date: January 15, 2025 - GAP OF 3+ MONTHS",
					"No coverage during gap period = liability exposure",
					"Rs. 15 Crore HVAC contract CANNOT proceed without valid insurance",
					"HVAC is safety-critical category - insurance is mandatory",
				},
				Artifacts: []types.Artifact{
					{ID: "art-ins", Type: types.ArtifactJSON, Label: "Insurance Verification - EXPIRED", Data: map[string]any{
						"policy_number":    "INS-2023-34521",
						"insurer":          "Bajaj Allianz General Insurance",
						"coverage":         "Rs. 5,00,00,000",
						"start_date":       "01/10/2023",
						"end_date":         "30/09/2024",
						"status":           "EXPIRED",
						"gap_days":         107,
						"minimum_required": "Rs. 5 Crore (safety-critical)",
						"risk":             "No third-party liability coverage active",
						"action_required":  "Request updated COI before proceeding",
					}},
				},
			},
			{
				ID:              "step-6",
				ProcessingTitle: "Assessing risk exposure from insurance gap...",
				ResultTitle:     "Risk assessment: High liability exposure on Rs. 15 Cr contract without insurance",
				Reasoning: []string{
					"Contract value: Rs. 15,00,00,000",
					"Insurance gap: 107 days (Oct 1, 2024 - Jan 15, 2025)",
					"HVAC installation involves: electrical work, refrigerant handling, height work",
					"Without valid COI, Conscient bears full liability for:",
					"- Worker injury claims",
					"- Third-party property damage",
					"- Equipment malfunction claims",
					"Recommendation: Draft email requesting updated COI with min Rs. 5 Cr coverage",
				},
			},
			{
				ID:              "step-7",
				ProcessingTitle: "Drafting email to vendor requesting updated insurance...",
				ResultTitle:     "Email drafted - Review and send request for updated Certificate of Insurance",
				Reasoning: []string{
					"Drafted formal request to Daikin India",
					"Requesting: Updated COI with minimum Rs. 5 Crore coverage",
					"Must include: Third-party liability, workmen compensation",
					"SLA: 7 business days to provide updated certificate",
					"Vendor onboarding paused until insurance received",
				},
				Artifacts: []types.Artifact{
					{ID: "art-email", Type: types.ArtifactEmailDraft, Label: "Insurance Update Request to Daikin", Data: map[string]any{
						"isIncoming": false,
						"to":         "amit.deshmukh@daikinindia.com",
						"cc":         "insurance@daikinindia.com, procurement@conscient.in",
						"subject":    "URGENT: Updated Certificate of Insurance Required - Vendor Registration CRF-2025-0089",
						"body":       "Dear Mr. Amit Deshmukh,\n\nDuring the vendor registration review for Daikin Airconditioning India (Application: CRF-2025-0089), we identified that your Certificate of Insurance (Policy INS-2023-34521, Bajaj Allianz) expired on September 30, 2024.\n\nAs the HVAC contract for Conscient PARQ (Sector 80, Gurgaon) is classified as safety-critical with a value of Rs. 15 Crore, we require a valid Certificate of Insurance before we can proceed.\n\nRequirements:\n- Minimum coverage: Rs. 5,00,00,000 (Five Crore)\n- Must include: Third-party liability & workmen compensation\n- Policy must be current and valid for at least 12 months\n\nPlease provide the updated COI within 7 business days. Your vendor registration is on hold pending this document.\n\nRegards,\nProcurement Team\nConscient Infrastructure Pvt Ltd\nTel: +91 124 456 7890",
					}},
				},
				Checkpoint: &runner.Checkpoint{
					Email:         true,
					BlockedStatus: "Draft Review: Email Pending",
					ResumeTitle:   "Email sent to Daikin requesting updated insurance",
					ResumeStatus:  "Email sent to vendor",
				},
			},
			{
				ID:              "step-8",
				ProcessingTitle: "Logging follow-up task with 7-day SLA...",
				ResultTitle:     "Follow-up task created - SLA: January 24, 2025, vendor status: Pending Documents",
				Reasoning: []string{
					"Follow-up task ID: FU-2025-0089-INS",
					"Assigned to: Procurement Team",
					"SLA deadline: January 24, 2025 (7 business days)",
					"Auto-reminder set for: January 22, 2025",
					"If no response: Escalate to VP Procurement",
				},
				Artifacts: []types.Artifact{
					{ID: "art-status", Type: types.ArtifactJSON, Label: "Vendor Registration Status", Data: map[string]any{
						"vendor":         "Daikin Airconditioning India Pvt Ltd",
						"vendor_code":    "VND-DAI-2025-0089",
						"status":         "PENDING_DOCUMENTS",
						"pending_item":   "Certificate of Insurance (COI)",
						"sla_deadline":   "2025-01-24",
						"reminder_date":  "2025-01-22",
						"escalation":     "VP Procurement if no response by SLA",
						"project_impact": "PARQ HVAC installation delayed until insurance verified",
					}},
				},
			},
		},
	}
}
