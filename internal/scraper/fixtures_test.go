package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const titlePageHTML = `
<html><body>
<div id="content">
  <div class="ContentBox">
    <ul>
      <li><b>Title:</b> The Dispossessed
      <li><b>Author:</b> <a href="ea.cgi?1">Ursula K. Le Guin</a>
      <li><b>Date:</b> 1974-05-00
      <li><b>Type:</b> NOVEL
    </ul>
  </div>
  <div class="ContentBox">
    <h3>Awards</h3>
    <table>
      <tr><th>Place</th><th>Year and Award</th><th>Category</th></tr>
      <tr><td><a href="award_details.cgi?1">Win</a></td><td><a href="ay.cgi?1">1975 Hugo Award</a></td><td><a href="award_category.cgi?1">Best Novel</a></td></tr>
      <tr><td><a href="award_details.cgi?2">Win</a></td><td><a href="ay.cgi?2">1974 Nebula Award</a></td><td><a href="award_category.cgi?2">Novel</a></td></tr>
      <tr><td><a href="award_details.cgi?3">Nomination</a></td><td><a href="ay.cgi?3">Locus Award</a></td><td><a href="award_category.cgi?3">SF Novel</a></td></tr>
      <tr><td><a href="award_details.cgi?4">2</a></td><td><a href="ay.cgi?4">1975 Locus Poll Award</a></td><td><a href="award_category.cgi?4">Science Fiction Novel</a></td></tr>
    </table>
  </div>
</div>
</body></html>`

const collectionPageHTML = `
<html><body>
<div id="content">
  <div class="ContentBox">
    <ul><li><b>Publication:</b> The Wind's Twelve Quarters</ul>
  </div>
  <div class="ContentBox">
    <a href="title.cgi?100">The Wind's Twelve Quarters</a>
    <h2>Contents <a href="pl.cgi?500+c">(view Concise Listing)</a></h2>
    <ul>
      <li> 1 &#8226; <a href="title.cgi?101">Semley's Necklace</a> &#8226; (1964) &#8226; short story by <a href="ea.cgi?1">Ursula K. Le Guin</a>
      <li> 5 &#8226; <a href="title.cgi?102">Cover Art</a> &#8226; interior artwork by <a href="ea.cgi?2">Some Artist</a>
      <li> 9 &#8226; <a href="title.cgi?103">Foreword</a> &#8226; essay by <a href="ea.cgi?1">Ursula K. Le Guin</a>
      <li> 20 &#8226; <a href="title.cgi?104">The Day Before the Revolution</a> &#8226; (1974) &#8226; short story by <a href="ea.cgi?1">Ursula K. Le Guin</a> (variant of <a href="title.cgi?105">Day Before the Revolution</a>)
      <li> 30 &#8226; Untitled filler
      <li> 40 &#8226; <a href="/cgi-bin/title.cgi?106">The Ones Who Walk Away from Omelas</a> &#8226; (1973) &#8226; short story
    </ul>
  </div>
</div>
</body></html>`

const variantCollectionPageHTML = `
<html><body>
<div id="content">
  <div class="ContentBox">
    <a href="title.cgi?200">Collected Stories (UK)</a> variant of <a href="title.cgi?201">Collected Stories</a>
    <h2>Contents</h2>
    <ul>
      <li> 1 &#8226; <a href="title.cgi?202">First Story</a> &#8226; (1950) &#8226; short story
    </ul>
  </div>
</div>
</body></html>`

func mustDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}
