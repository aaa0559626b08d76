package presenter

import "strings"

// FormatMainMenu renders the unauthenticated main menu.
func FormatMainMenu(schoolName string) string {
	var sb strings.Builder

	sb.WriteString("\n\t WELCOME TO THE SCHOOL MANAGEMENT SYSTEM\n")
	sb.WriteString("\n\t" + schoolName + "\n")
	sb.WriteString("\n1. Login with student roll number\n")
	sb.WriteString("2. About the application\n")
	sb.WriteString("3. Exit\n")
	sb.WriteString("\nEnter your choice: ")

	return sb.String()
}

// FormatStudentMenu renders the student portal menu.
func FormatStudentMenu(studentName string) string {
	var sb strings.Builder

	sb.WriteString("\n\tSTUDENT PORTAL - " + studentName + "\n")
	sb.WriteString("\n1. View Profile\n")
	sb.WriteString("2. View Fee Payment History\n")
	sb.WriteString("3. View Academic Performance\n")
	sb.WriteString("4. View Notice Board\n")
	sb.WriteString("5. View Time Table\n")
	sb.WriteString("6. View Upcoming Tests\n")
	sb.WriteString("7. Return to Main Menu\n")
	sb.WriteString("8. Exit\n")
	sb.WriteString("\nEnter your choice: ")

	return sb.String()
}

// FormatAbout renders the about view.
func FormatAbout() string {
	var sb strings.Builder

	sb.WriteString("\n\tABOUT THE APPLICATION\n")
	sb.WriteString("\nSchool Management System v2.0\n")
	sb.WriteString("Original release: January 1, 2020\n")
	sb.WriteString("First update: September 4, 2020\n")
	sb.WriteString("Latest update: February 28, 2025\n")
	sb.WriteString("\nDeveloped by: J.B. Ltd (Enhanced for SWOC 2025)\n")
	sb.WriteString("\nFeatures:\n")
	sb.WriteString("- Student Information Management\n")
	sb.WriteString("- Fee Payment Tracking\n")
	sb.WriteString("- Academic Performance Analysis\n")
	sb.WriteString("- Notice Board\n")
	sb.WriteString("- Time Table Management\n")
	sb.WriteString("- Test Schedule Tracking\n")

	return sb.String()
}

// FormatFarewell renders the exit message.
func FormatFarewell() string {
	return "\n\tThank you for using the School Management System!\n" +
		"\tWe are committed to the betterment of every child.\n"
}
