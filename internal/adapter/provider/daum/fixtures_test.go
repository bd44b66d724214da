package daum

const sampleSearch = `<!DOCTYPE html>
<html>
<head>
<script>
  var recent = "/word/view.do?wordid=hhw999999"; // class="txt_emph1">水
</script>
</head>
<body>
<div class="gnb"><a href="/word/view.do?wordid=hhw000000001">오늘의 한자</a></div>
<div class="search_box">
  <div class="cleanword_type">
    <strong class="tit_cleansch">
      <a href="/word/view.do?wordid=hhw000029434&amp;q=%E6%B0%B4" class="txt_cleansch"><span class="txt_emph1">水</span></a>
    </strong>
  </div>
  <div class="cleanword_type">
    <strong class="tit_cleansch">
      <a href="/word/view.do?wordid=hhw000031111" class="txt_cleansch"><span class="txt_emph1">水</span>道</a>
    </strong>
  </div>
</div>
</body>
</html>`

const sampleEntry = `<!DOCTYPE html>
<html>
<body>
<div class="cleanword_type">
  <strong class="tit_cleansch">水</strong>
  <div class="wrap_read">
    <span class="txt_read">
      <span class="txt_pronounce">물</span> 수
    </span>
  </div>
</div>
</body>
</html>`

const sampleSupplement = `<div class="wrap_desc">
  <div class="wrap_ex"><span>물 수</span></div>
  <div class="txt_mean">물, 강물</div>
</div>
<div class="wrap_desc">
  <ul class="item_example">
    <li><span class="desc_ruby">山水<span class="txt_from">&nbsp;論語&nbsp;</span></span><span class="desc_ex">산수</span></li>
    <li><span class="desc_ruby">水魚之交</span></li>
  </ul>
  <div class="ex_refer"><span class="txt_refer on">氵</span><span class="txt_refer on">氺</span></div>
</div>`
