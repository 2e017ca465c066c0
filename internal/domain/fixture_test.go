package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/valdiff/internal/adapter"
	m "github.com/mouse-blink/valdiff/internal/model"
)

const reportTemplate = `<VAL>
<RESULTSHEADER>
<COUNTRY><REGULATION>ECE</REGULATION><LANGUAGE>de</LANGUAGE></COUNTRY>
<CARDEALER><NAME>n</NAME><COMPANY>c</COMPANY><ADDRESS>a</ADDRESS><ZIP>z</ZIP><CITY>c</CITY><TEL>t</TEL><DEALERNO>d</DEALERNO><ORDER>o</ORDER><WARRANTYNO>w</WARRANTYNO></CARDEALER>
<VEHICLE>
<IDENT><VIN>WDD2050001F000001</VIN><REGISTRATION>S-VD 100</REGISTRATION></IDENT>
<DATA><ODOMETER UNIT="km">1</ODOMETER><OPERATINGTIME UNIT="h">1</OPERATINGTIME><ORDERTYPE>o</ORDERTYPE><MODELTYPE>m</MODELTYPE><ENGINETYPE>e</ENGINETYPE><COUNTRYCODE>DE</COUNTRYCODE><GEARBOXTYPE>g</GEARBOXTYPE><ONBOARDVOLTAGE UNIT="V">12</ONBOARDVOLTAGE></DATA>
</VEHICLE>
</RESULTSHEADER>
<RESULT OBJECT="VAL" METHOD="Quicktest">
<TITLE>Quick test</TITLE>
<HEADER>
<START_TEST>03.02.2024 10:15:00</START_TEST><END_TEST>03.02.2024 10:45:30</END_TEST><TIMEZONE>GMT+01:00</TIMEZONE><PROTOKOLLTYPE>VAL</PROTOKOLLTYPE>
<EQUIPMENT TYPE="t"><TITLE>t</TITLE><MANUFACTURER>m</MANUFACTURER><MODEL>m</MODEL><SERIAL_NO>s</SERIAL_NO><FIRMWARE>f</FIRMWARE><VERSION>v</VERSION><PT2GVERSION>p</PT2GVERSION><BR_PDX>b</BR_PDX><PDU_API>p</PDU_API><SAMDIAX_VERSION>s</SAMDIAX_VERSION><SYSTEM>s</SYSTEM><JAVA>j</JAVA><MODE>m</MODE></EQUIPMENT>
</HEADER>
%s
</RESULT>
</VAL>`

func section(title string, measurements ...string) string {
	return fmt.Sprintf(`<SECTION OBJECT="ECU"><TITLE>%s</TITLE>%s</SECTION>`, title, strings.Join(measurements, ""))
}

func meas(object, title string, children ...string) string {
	return fmt.Sprintf(`<MEAS OBJECT="%s"><TITLE>%s</TITLE>%s</MEAS>`, object, title, strings.Join(children, ""))
}

func alpha(label, text, value string) string {
	return fmt.Sprintf(`<VALUE FORMAT="ALPHA" TEXT="%s" LABEL="%s">%s</VALUE>`, text, label, value)
}

func num(label, text, value string) string {
	return fmt.Sprintf(`<VALUE FORMAT="NUM" TEXT="%s" LABEL="%s">%s</VALUE>`, text, label, value)
}

// document decodes a report made of the given SECTION elements.
func document(t *testing.T, sections ...string) *m.Document {
	t.Helper()

	doc, err := adapter.NewXMLReportDecoder().Decode(strings.NewReader(fmt.Sprintf(reportTemplate, strings.Join(sections, "\n"))))
	require.NoError(t, err)

	return doc
}

// gatewayReport has every measurement kind, a nested Fehler and an absent ALPHA payload.
func gatewayReport(t *testing.T, scannerCode string) *m.Document {
	t.Helper()

	return document(t,
		section("Gateway",
			meas("Codierung", "Control unit, coding",
				alpha("X", "Scanner code", scannerCode),
				num("Voltage", "12.6 V", "12.6"),
			),
			meas("Identifikation", "Identification",
				alpha("Part number", "A 205 900 00 00", "2059000000"),
			),
			meas("Fehler", "Faults",
				meas("Identifikation", "Event",
					alpha("Status", "active", "A"),
				),
				alpha("Count", "1", "1"),
			),
			meas("Messwerte", "Live data",
				num("Speed", "0 km/h", "0"),
			),
			meas("Erweiterter Fehlerspeicher", "Extended",
				alpha("Frame", "empty", ""),
			),
		),
		section("Engine",
			meas("Codierung", "Engine coding",
				alpha("Variant", "Petrol", "P"),
			),
		),
	)
}
