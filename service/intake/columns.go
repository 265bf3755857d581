package intake

// Column names produced by the official form export.
const (
	ColumnTimestamp      = "タイムスタンプ"
	ColumnEmail          = "メールアドレス"
	ColumnConsent        = "規約への同意"
	ColumnApplicantID    = "申請者の学籍番号"
	ColumnApplicantName  = "申請者の氏名"
	ColumnApplicantPhoto = "申請者の学生証写真"
	ColumnPartnership    = "共同利用者の有無"
	ColumnPartnerID      = "共同利用者の学籍番号"
	ColumnPartnerName    = "共同利用者の氏名"
	ColumnPartnerPhoto   = "共同利用者の学生証写真"
	ColumnFloorSolo      = "階数希望選択（共同利用者なし）"
	ColumnFloorPartnered = "階数希望選択（共同利用者あり）"
)

// ApplicantColumns returns the columns the applicant export must carry.
func ApplicantColumns() []string {
	return []string{
		ColumnTimestamp,
		ColumnEmail,
		ColumnConsent,
		ColumnApplicantID,
		ColumnApplicantName,
		ColumnApplicantPhoto,
		ColumnPartnership,
		ColumnPartnerID,
		ColumnPartnerName,
		ColumnFloorSolo,
		ColumnFloorPartnered,
	}
}

// PartnerColumns returns the columns the partner export must carry.
func PartnerColumns() []string {
	return []string{
		ColumnTimestamp,
		ColumnEmail,
		ColumnConsent,
		ColumnPartnerID,
		ColumnPartnerName,
		ColumnPartnerPhoto,
	}
}
