package schema

// Default returns the built-in catalog of Technical Council request
// templates. The catalog is loaded once at startup and never mutated.
func Default() *Catalog {
	return NewCatalog(builtinTemplates)
}

var builtinTemplates = []Template{
	{
		ID:          "general_petition",
		Name:        "General Petition to the Technical Council",
		Description: "Formal request for miscellaneous matters, justifications and general petitions.",
		Icon:        "FileText",
		Sections: []Section{
			{
				ID:    "header",
				Title: "General Information",
				Fields: []Field{
					{ID: "folio", Label: "Folio", Type: FieldText, Placeholder: "Auto-generated", LayoutWidth: 1},
					{ID: "requestDate", Label: "Request Date", Type: FieldDate, Required: true, LayoutWidth: 1},
				},
			},
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "email", Label: "Email Address", Type: FieldEmail, Required: true, LayoutWidth: 2},
					{ID: "personalId", Label: "Student/Staff ID", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "applicantType", Label: "Applicant Type", Type: FieldSelect, Options: []string{"Student", "Faculty", "Staff"}, Required: true, LayoutWidth: 1},
					{ID: "program", Label: "Program/Area", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "phone", Label: "Phone", Type: FieldText, Required: true, LayoutWidth: 1},
				},
			},
			{
				ID:    "subject",
				Title: "II. Subject of the Petition",
				Fields: []Field{
					{ID: "subjectLine", Label: "Subject", Type: FieldText, Required: true, LayoutWidth: 2},
				},
			},
			{
				ID:    "details",
				Title: "III. Full Description",
				Fields: []Field{
					{ID: "description", Label: "Detailed Description", Type: FieldTextarea, Required: true, LayoutWidth: 2, HelpText: "Use the AI assistant to improve the wording."},
				},
			},
			{
				ID:    "requirements",
				Title: "IV. Required Resources",
				Fields: []Field{
					{ID: "requirementsText", Label: "Requirements", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
			{
				ID:    "justification",
				Title: "V. Justification",
				Fields: []Field{
					{ID: "justificationText", Label: "Justification", Type: FieldTextarea, Required: true, LayoutWidth: 2},
				},
			},
			{
				ID:    "benefit",
				Title: "VI. Expected Benefit",
				Fields: []Field{
					{ID: "benefitText", Label: "Benefit", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "academic_event",
		Name:        "Academic Event Organization",
		Description: "Request to organize conferences, seminars or workshops.",
		Icon:        "Calendar",
		Sections: []Section{
			{
				ID:    "organizer",
				Title: "I. Organizer Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "program", Label: "Program/Area", Type: FieldText, LayoutWidth: 2},
				},
			},
			{
				ID:    "event_info",
				Title: "II. General Event Information",
				Fields: []Field{
					{ID: "eventName", Label: "Event Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "modality", Label: "Modality", Type: FieldSelect, Options: []string{"On-site", "Virtual", "Hybrid"}, LayoutWidth: 1},
					{ID: "eventDate", Label: "Event Date(s)", Type: FieldText, Placeholder: "E.g. October 10-12", LayoutWidth: 1},
					{ID: "venue", Label: "Venue/Platform", Type: FieldText, LayoutWidth: 1},
					{ID: "schedule", Label: "Schedule", Type: FieldText, LayoutWidth: 1},
					{ID: "attendees", Label: "Expected Attendees", Type: FieldNumber, LayoutWidth: 1},
				},
			},
			{
				ID:    "justification",
				Title: "III. Relevance and Justification",
				Fields: []Field{
					{ID: "academicJustification", Label: "Academic Justification", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "impact", Label: "Expected Impact on Research Lines", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
			{
				ID:    "budget",
				Title: "VI. Detailed Budget",
				Fields: []Field{
					{ID: "totalBudget", Label: "Total Estimated Budget ($ MXN)", Type: FieldCurrency, Required: true, LayoutWidth: 2},
					{ID: "budgetLogistics", Label: "1. Logistics and Venues", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetMaterials", Label: "2. Materials and Stationery", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetFood", Label: "3. Food and Beverages", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetFees", Label: "4. Speaker Fees", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetTransport", Label: "5. Transportation and Travel", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetDiffusion", Label: "6. Promotion", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "budgetUnforeseen", Label: "7. Contingency (10%)", Type: FieldCurrency, LayoutWidth: 1},
				},
			},
		},
	},
	{
		ID:          "tutorial_committee",
		Name:        "Tutorial Committee Petition",
		Description: "Registration or modification of thesis directors, co-tutors and advisors.",
		Icon:        "Users",
		Sections: []Section{
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "matricula", Label: "Student ID", Type: FieldText, LayoutWidth: 1},
					{ID: "program", Label: "Graduate Program", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "project",
				Title: "II. Research Project",
				Fields: []Field{
					{ID: "projectTitle", Label: "Project Title", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "description", Label: "General Description", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
			{
				ID:    "committee",
				Title: "III. Proposed Composition",
				Fields: []Field{
					{ID: "directorName", Label: "Thesis Director - Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "directorInst", Label: "Institution", Type: FieldText, LayoutWidth: 1},
					{ID: "directorJust", Label: "Justification", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "cotutorName", Label: "Co-Tutor - Name", Type: FieldText, LayoutWidth: 2},
					{ID: "cotutorInst", Label: "Co-Tutor Institution", Type: FieldText, LayoutWidth: 1},
					{ID: "cotutorJust", Label: "Co-Tutor Justification", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "institutional_endorsement",
		Name:        "Institutional Endorsement",
		Description: "Request for official backing for external events.",
		Icon:        "ShieldCheck",
		Sections: []Section{
			{
				ID:    "event_external",
				Title: "II. External Event Information",
				Fields: []Field{
					{ID: "eventName", Label: "Event Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "organizer", Label: "Organizer", Type: FieldText, LayoutWidth: 1},
					{ID: "webPage", Label: "Official Web Page", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "participation",
				Title: "III. Type of Participation",
				Fields: []Field{
					{ID: "role", Label: "I will participate as", Type: FieldSelect, Options: []string{"Speaker", "Attendee", "Organizer"}, LayoutWidth: 1},
					{ID: "paperTitle", Label: "Paper Title (if applicable)", Type: FieldText, LayoutWidth: 2},
					{ID: "abstract", Label: "Abstract or Summary", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "academic_viaticos",
		Name:        "Faculty - Travel Expenses and Registrations",
		Description: "Request for travel expenses, registrations or reimbursements for academic staff.",
		Icon:        "CreditCard",
		Sections: []Section{
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "personalId", Label: "Staff ID", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "program", Label: "Program/Department", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "email", Label: "Email Address", Type: FieldEmail, Required: true, LayoutWidth: 1},
					{ID: "phone", Label: "Phone", Type: FieldText, Required: true, LayoutWidth: 1},
				},
			},
			{
				ID:    "period_place",
				Title: "II. Period and Place",
				Fields: []Field{
					{ID: "place", Label: "Place", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "periodStart", Label: "Period Start", Type: FieldDate, Required: true, LayoutWidth: 1},
					{ID: "periodEnd", Label: "Period End", Type: FieldDate, Required: true, LayoutWidth: 1},
				},
			},
			{
				ID:    "reason_project",
				Title: "III. Project and Reason",
				Fields: []Field{
					{ID: "projectTitle", Label: "Project/Thesis Title", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "reason", Label: "Reason for the request", Type: FieldTextarea, Required: true, LayoutWidth: 2, HelpText: "Briefly explain the reason for the trip or expense."},
				},
			},
			{
				ID:    "specific_info",
				Title: "IV. Specific Information",
				Fields: []Field{
					{ID: "eventName", Label: "Event / Activity", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "cityCountry", Label: "City / Country", Type: FieldText, LayoutWidth: 1},
					{ID: "eventDates", Label: "Event Dates", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "expenses",
				Title: "V. Detailed Expense Breakdown",
				Fields: []Field{
					{ID: "expRegistration", Label: "Registration ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expFood", Label: "Meals ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expLodging", Label: "Lodging ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expTransport", Label: "Transportation ($)", Type: FieldCurrency, LayoutWidth: 1},
				},
			},
			{
				ID:    "signatures",
				Title: "VI. Signatures and Observations",
				Fields: []Field{
					{ID: "directorName", Label: "Director or Advisor Name (for approval)", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "observations", Label: "Additional Observations", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "student_endorsement",
		Name:        "Students - Academic Activity Endorsement",
		Description: "Academic endorsement request for students.",
		Icon:        "Award",
		Sections: []Section{
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "personalId", Label: "Student ID", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "program", Label: "Program", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "email", Label: "Email", Type: FieldEmail, LayoutWidth: 1},
					{ID: "phone", Label: "Phone", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "period_place",
				Title: "II. Period and Place",
				Fields: []Field{
					{ID: "place", Label: "Place", Type: FieldText, LayoutWidth: 2},
					{ID: "periodStart", Label: "Period Start", Type: FieldDate, LayoutWidth: 1},
					{ID: "periodEnd", Label: "Period End", Type: FieldDate, LayoutWidth: 1},
				},
			},
			{
				ID:    "project_details",
				Title: "III. Activity Details",
				Fields: []Field{
					{ID: "projectTitle", Label: "Project/Thesis Title", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "reason", Label: "Reason", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "activity", Label: "Activity", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "objective", Label: "Objective", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "expectedResults", Label: "Expected Results", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
			{
				ID:    "signatures",
				Title: "IV. Validations",
				Fields: []Field{
					{ID: "directorName", Label: "Director/Advisor Name (approval)", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "observations", Label: "Observations", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "student_external_course",
		Name:        "Students - Approval for External Courses and Stays",
		Description: "Request for approval of courses outside the institution or research stays.",
		Icon:        "BookOpen",
		Sections: []Section{
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "personalId", Label: "Student ID", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "program", Label: "Program", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "email", Label: "Email", Type: FieldEmail, LayoutWidth: 1},
					{ID: "phone", Label: "Phone", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "period_place",
				Title: "II. Period and Place",
				Fields: []Field{
					{ID: "place", Label: "Place", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "periodStart", Label: "Period Start", Type: FieldDate, LayoutWidth: 1},
					{ID: "periodEnd", Label: "Period End", Type: FieldDate, LayoutWidth: 1},
				},
			},
			{
				ID:    "activity_info",
				Title: "III. Activity Information",
				Fields: []Field{
					{ID: "projectTitle", Label: "Project/Thesis Title", Type: FieldText, LayoutWidth: 2},
					{ID: "reason", Label: "Reason", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "activityType", Label: "Activity Type", Type: FieldSelect, Options: []string{"Course", "Research Stay", "Seminar", "Other"}, LayoutWidth: 1},
					{ID: "institution", Label: "Institution/Organizer", Type: FieldText, LayoutWidth: 2},
					{ID: "evidence", Label: "Evidence (Call/Invitation)", Type: FieldTextarea, LayoutWidth: 2, HelpText: "Describe the document you will attach."},
				},
			},
			{
				ID:    "expenses",
				Title: "IV. Expense Breakdown (Optional)",
				Fields: []Field{
					{ID: "expRegistration", Label: "Registration ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expFood", Label: "Meals ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expLodging", Label: "Lodging ($)", Type: FieldCurrency, LayoutWidth: 1},
					{ID: "expTransport", Label: "Transportation ($)", Type: FieldCurrency, LayoutWidth: 1},
				},
			},
			{
				ID:    "signatures",
				Title: "V. Signatures",
				Fields: []Field{
					{ID: "directorName", Label: "Director/Advisor Name (approval)", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "observations", Label: "Observations", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
	{
		ID:          "student_field_trip",
		Name:        "Students - Field Trip Letter",
		Description: "Official notice and letter request for field trips.",
		Icon:        "Map",
		Sections: []Section{
			{
				ID:    "applicant",
				Title: "I. Applicant Information",
				Fields: []Field{
					{ID: "fullName", Label: "Full Name", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "personalId", Label: "Student ID", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "program", Label: "Program", Type: FieldText, Required: true, LayoutWidth: 1},
					{ID: "email", Label: "Email", Type: FieldEmail, LayoutWidth: 1},
					{ID: "phone", Label: "Phone", Type: FieldText, LayoutWidth: 1},
				},
			},
			{
				ID:    "period_place",
				Title: "II. Period and Place",
				Fields: []Field{
					{ID: "place", Label: "General Location", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "periodStart", Label: "Period Start", Type: FieldDate, LayoutWidth: 1},
					{ID: "periodEnd", Label: "Period End", Type: FieldDate, LayoutWidth: 1},
				},
			},
			{
				ID:    "details",
				Title: "III. Trip Details",
				Fields: []Field{
					{ID: "projectTitle", Label: "Project/Thesis Title", Type: FieldText, LayoutWidth: 2},
					{ID: "reason", Label: "Reason", Type: FieldTextarea, LayoutWidth: 2},
					{ID: "destination", Label: "Specific Destination(s)", Type: FieldText, LayoutWidth: 2},
					{ID: "fieldDates", Label: "Activity Dates", Type: FieldText, Placeholder: "Describe specific days if applicable", LayoutWidth: 2},
					{ID: "fieldResp", Label: "Field Supervisor", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "risks", Label: "Risks / Safety", Type: FieldTextarea, LayoutWidth: 2, HelpText: "Mention safety measures or potential risks."},
					{ID: "specificObjectives", Label: "Specific Objectives", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
			{
				ID:    "signatures",
				Title: "IV. Signatures",
				Fields: []Field{
					{ID: "directorName", Label: "Director/Advisor Name (approval)", Type: FieldText, Required: true, LayoutWidth: 2},
					{ID: "observations", Label: "Observations", Type: FieldTextarea, LayoutWidth: 2},
				},
			},
		},
	},
}
