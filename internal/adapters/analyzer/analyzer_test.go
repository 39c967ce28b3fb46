package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/analyzer"
	"go.trai.ch/buildserver/internal/core/domain"
)

const screen1 = `#|
$JSON
{"authURL":["ai2.appinventor.mit.edu"],"YaVersion":"208","Source":"Form","Properties":{"$Name":"Screen1","$Type":"Form","$Version":"27","AppName":"Foo","ScreenOrientation":"portrait","Title":"Screen1","Uuid":"0","$Components":[{"$Name":"HorizontalArrangement1","$Type":"HorizontalArrangement","$Version":"4","Uuid":"1","$Components":[{"$Name":"Button1","$Type":"Button","$Version":"6","Uuid":"2"},{"$Name":"Button2","$Type":"Button","$Version":"6","Uuid":"3"}]},{"$Name":"Texting1","$Type":"Texting","$Version":"4","Uuid":"4"}]}}
|#
`

const screen1Blocks = `<xml xmlns="https://developers.google.com/blockly/xml">
  <block type="component_event" id="a" x="10" y="10">
    <mutation component_type="Button" is_generic="false" instance_name="Button1" event_name="Click"></mutation>
    <field name="COMPONENT_SELECTOR">Button1</field>
    <statement name="DO">
      <block type="component_method" id="b">
        <mutation component_type="Texting" method_name="SendMessage" is_generic="false" instance_name="Texting1"></mutation>
        <next>
          <block type="component_set_get" id="c">
            <mutation component_type="Button" set_or_get="set" property_name="Text" is_generic="false" instance_name="Button2"></mutation>
            <value name="VALUE">
              <block type="helpers_dropdown" id="d">
                <mutation key="Permission"></mutation>
                <field name="OPTION">CoarseLocation</field>
              </block>
            </value>
          </block>
        </next>
      </block>
    </statement>
  </block>
  <block type="helpers_dropdown" id="e">
    <mutation key="FileScope"></mutation>
    <field name="OPTION">Shared</field>
  </block>
  <block type="component_event" id="f" disabled="true">
    <mutation component_type="Clock" is_generic="false" instance_name="Clock1" event_name="Timer"></mutation>
    <statement name="DO">
      <block type="helpers_dropdown" id="g">
        <mutation key="Permission"></mutation>
        <field name="OPTION">ReadContacts</field>
      </block>
    </statement>
  </block>
  <yacodeblocks ya-version="208" language-version="36"></yacodeblocks>
</xml>`

func TestComponentNames(t *testing.T) {
	names, err := analyzer.New().ComponentNames([]byte(screen1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Button", "Form", "HorizontalArrangement", "Texting"}, names)
}

func TestOrientation(t *testing.T) {
	a := analyzer.New()

	o, err := a.Orientation([]byte(screen1))
	require.NoError(t, err)
	assert.Equal(t, "portrait", o)

	o, err = a.Orientation([]byte(`#|
$JSON
{"Properties":{"$Name":"Screen2","$Type":"Form"}}
|#`))
	require.NoError(t, err)
	assert.Equal(t, "unspecified", o)
}

func TestForm_Malformed(t *testing.T) {
	a := analyzer.New()

	_, err := a.ComponentNames([]byte("no marker here"))
	require.ErrorIs(t, err, domain.ErrDescriptorParse)

	_, err = a.Orientation([]byte("#|\n$JSON\n{not json\n|#"))
	require.ErrorIs(t, err, domain.ErrDescriptorParse)
}

func TestAnalyzeBlocks(t *testing.T) {
	result, err := analyzer.New().AnalyzeBlocks([]byte(screen1Blocks))
	require.NoError(t, err)

	assert.Equal(t, []string{"Button", "Texting"}, domain.SortedKeys(result.ComponentBlocks))
	assert.Equal(t, []string{"Click", "Text"}, domain.SortedKeys(result.ComponentBlocks["Button"]))
	assert.Equal(t, []string{"SendMessage"}, domain.SortedKeys(result.ComponentBlocks["Texting"]))
	assert.Equal(t, []string{"android.permission.COARSE_LOCATION"}, domain.SortedKeys(result.Permissions))
	assert.Equal(t, []string{"Shared"}, domain.SortedKeys(result.Scopes))
}

func TestAnalyzeBlocks_Empty(t *testing.T) {
	result, err := analyzer.New().AnalyzeBlocks(nil)
	require.NoError(t, err)
	assert.Empty(t, result.ComponentBlocks)
	assert.Empty(t, result.Permissions)
}

func TestAnalyzeBlocks_Malformed(t *testing.T) {
	_, err := analyzer.New().AnalyzeBlocks([]byte(`<xml><block type="x">`))
	require.ErrorIs(t, err, domain.ErrDescriptorParse)
}
