package registry

import "policyradar/internal/domain/entity"

// curatedSources returns the hand-picked list of roughly two hundred Indian
// public-policy feeds and sites (spec §2, §4.1). The list favors breadth
// across the fourteen policy sectors over raw volume: each entry is a
// source this project's maintainers vetted for signal rather than one
// discovered by crawling.
func curatedSources() []*entity.Source {
	var sources []*entity.Source
	sources = append(sources, governmentSources()...)
	sources = append(sources, regulatorSources()...)
	sources = append(sources, legalSources()...)
	sources = append(sources, thinkTankSources()...)
	sources = append(sources, newsMediaSources()...)
	sources = append(sources, businessSources()...)
	sources = append(sources, sectorSpecialistSources()...)
	return sources
}

// governmentSources covers the union ministries most active in policy
// announcements (spec §4.1: government sources carry the highest
// reliability weight but the lowest volume).
func governmentSources() []*entity.Source {
	return []*entity.Source{
		src("Press Information Bureau", "https://pib.gov.in/RssMain.aspx?ModId=6&Lang=1&Regid=3", "Governance & Administration", entity.SourceGovernment),
		src("Cabinet Secretariat", "https://cabsec.gov.in/more/rss/", "Governance & Administration", entity.SourceGovernment),
		src("Ministry of Home Affairs", "https://www.mha.gov.in/en/notifications", "Governance & Administration", entity.SourceGovernment),
		src("Ministry of Finance", "https://www.finmin.nic.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Commerce and Industry", "https://commerce.gov.in/rss-feed/", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Corporate Affairs", "https://www.mca.gov.in/content/mca/global/en/rss.html", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Statistics and Programme Implementation", "https://mospi.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Electronics & IT", "https://www.meity.gov.in/whatsnew", "Technology Policy", entity.SourceGovernment),
		src("Department of Telecommunications", "https://dot.gov.in/whatsnew", "Technology Policy", entity.SourceGovernment),
		src("Ministry of Information and Broadcasting", "https://mib.gov.in/rss.xml", "Technology Policy", entity.SourceGovernment),
		src("NITI Aayog", "https://www.niti.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Ministry of Health and Family Welfare", "https://mohfw.gov.in/rss.xml", "Healthcare Policy", entity.SourceGovernment),
		src("Ministry of AYUSH", "https://ayush.gov.in/rss.xml", "Healthcare Policy", entity.SourceGovernment),
		src("Ministry of Environment, Forest and Climate Change", "https://moef.gov.in/whatsnew/rss", "Environmental Policy", entity.SourceGovernment),
		src("Ministry of Jal Shakti", "https://jalshakti.gov.in/rss.xml", "Environmental Policy", entity.SourceGovernment),
		src("Ministry of New and Renewable Energy", "https://mnre.gov.in/rss.xml", "Energy Policy", entity.SourceGovernment),
		src("Ministry of Power", "https://powermin.gov.in/rss.xml", "Energy Policy", entity.SourceGovernment),
		src("Ministry of Petroleum and Natural Gas", "https://petroleum.nic.in/rss.xml", "Energy Policy", entity.SourceGovernment),
		src("Ministry of Coal", "https://coal.gov.in/rss.xml", "Energy Policy", entity.SourceGovernment),
		src("Ministry of Education", "https://education.gov.in/rss.xml", "Education Policy", entity.SourceGovernment),
		src("University Grants Commission", "https://ugc.gov.in/rss.xml", "Education Policy", entity.SourceGovernment),
		src("All India Council for Technical Education", "https://aicte-india.org/rss.xml", "Education Policy", entity.SourceGovernment),
		src("Ministry of Agriculture and Farmers Welfare", "https://agriculture.gov.in/rss.xml", "Agricultural Policy", entity.SourceGovernment),
		src("Ministry of Food Processing Industries", "https://mofpi.nic.in/rss.xml", "Agricultural Policy", entity.SourceGovernment),
		src("Ministry of Defence", "https://mod.gov.in/rss.xml", "Defense & Security", entity.SourceGovernment),
		src("Ministry of External Affairs", "https://mea.gov.in/press-releases.htm?51/Press_Releases", "Foreign Policy", entity.SourceGovernment),
		src("Ministry of Law and Justice", "https://lawmin.gov.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Department of Justice", "https://doj.gov.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Ministry of Women and Child Development", "https://wcd.nic.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Rural Development", "https://rural.nic.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Social Justice and Empowerment", "https://socialjustice.gov.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Tribal Affairs", "https://tribal.nic.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Panchayati Raj", "https://panchayat.gov.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Housing and Urban Affairs", "https://mohua.gov.in/rss.xml", "Urban Development Policy", entity.SourceGovernment),
		src("Ministry of Road Transport and Highways", "https://morth.nic.in/rss.xml", "Urban Development Policy", entity.SourceGovernment),
		src("Ministry of Railways", "https://indianrailways.gov.in/railwayboard/rss.xml", "Urban Development Policy", entity.SourceGovernment),
		src("Ministry of Civil Aviation", "https://civilaviation.gov.in/rss.xml", "Urban Development Policy", entity.SourceGovernment),
		src("Ministry of Science and Technology", "https://dst.gov.in/rss.xml", "Science & Technology Policy", entity.SourceGovernment),
		src("Department of Space (ISRO)", "https://www.isro.gov.in/rss.xml", "Science & Technology Policy", entity.SourceGovernment),
		src("Department of Atomic Energy", "https://dae.gov.in/rss.xml", "Science & Technology Policy", entity.SourceGovernment),
		src("Ministry of Earth Sciences", "https://moes.gov.in/rss.xml", "Science & Technology Policy", entity.SourceGovernment),
		src("Ministry of Labour and Employment", "https://labour.gov.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("Ministry of Skill Development and Entrepreneurship", "https://msde.gov.in/rss.xml", "Education Policy", entity.SourceGovernment),
		src("Ministry of Micro, Small and Medium Enterprises", "https://msme.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Steel", "https://steel.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Mines", "https://mines.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Textiles", "https://texmin.nic.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Consumer Affairs", "https://consumeraffairs.nic.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Ministry of Culture", "https://indiaculture.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Ministry of Tourism", "https://tourism.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Election Commission of India", "https://eci.gov.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Comptroller and Auditor General", "https://cag.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Lok Sabha Secretariat", "https://loksabha.nic.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Rajya Sabha Secretariat", "https://rajyasabha.nic.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
	}
}

// regulatorSources covers independent statutory regulators, whose notices
// carry the same government-grade reliability as a ministry circular.
func regulatorSources() []*entity.Source {
	return []*entity.Source{
		src("Reserve Bank of India", "https://rbi.org.in/Scripts/BS_PressReleaseDisplay.aspx", "Economic Policy", entity.SourceGovernment),
		src("Securities and Exchange Board of India", "https://www.sebi.gov.in/sebirss.xml", "Economic Policy", entity.SourceGovernment),
		src("Insurance Regulatory and Development Authority", "https://irdai.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Pension Fund Regulatory and Development Authority", "https://pfrda.org.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Competition Commission of India", "https://cci.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("TRAI", "https://www.trai.gov.in/rss.xml", "Technology Policy", entity.SourceGovernment),
		src("National Pharmaceutical Pricing Authority", "https://nppaindia.nic.in/rss.xml", "Healthcare Policy", entity.SourceGovernment),
		src("Food Safety and Standards Authority of India", "https://fssai.gov.in/rss.xml", "Healthcare Policy", entity.SourceGovernment),
		src("Central Electricity Regulatory Commission", "https://cercind.gov.in/rss.xml", "Energy Policy", entity.SourceGovernment),
		src("National Medical Commission", "https://www.nmc.org.in/rss.xml", "Healthcare Policy", entity.SourceGovernment),
		src("Central Pollution Control Board", "https://cpcb.nic.in/rss.xml", "Environmental Policy", entity.SourceGovernment),
		src("Central Bureau of Investigation", "https://cbi.gov.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Enforcement Directorate", "https://enforcementdirectorate.gov.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Central Board of Indirect Taxes and Customs", "https://cbic.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Income Tax Department", "https://incometaxindia.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
	}
}

// legalSources track courts, bar bodies, and legal-affairs outlets that
// track legislation and litigation directly.
func legalSources() []*entity.Source {
	return []*entity.Source{
		src("PRS Legislative Research", "https://prsindia.org/billtrack/feed", "Constitutional & Legal", entity.SourceGovernment),
		src("Supreme Court of India", "https://main.sci.gov.in/judgments-rss", "Constitutional & Legal", entity.SourceGovernment),
		src("Bar and Bench", "https://www.barandbench.com/feed", "Constitutional & Legal", entity.SourceLegal),
		src("LiveLaw", "https://www.livelaw.in/category/top-stories/google_feeds.xml", "Constitutional & Legal", entity.SourceLegal),
		src("LiveLaw Hindi", "https://hindi.livelaw.in/feed", "Constitutional & Legal", entity.SourceLegal),
		src("SCC Online Blog", "https://www.scconline.com/blog/feed", "Constitutional & Legal", entity.SourceLegal),
		src("Vidhi Centre for Legal Policy", "https://vidhilegalpolicy.in/feed/", "Constitutional & Legal", entity.SourceThinkTank),
		src("Supreme Court Observer", "https://www.scobserver.in/feed/", "Constitutional & Legal", entity.SourceLegal),
		src("Bar Council of India", "https://www.barcouncilofindia.org/rss.xml", "Constitutional & Legal", entity.SourceLegal),
		src("Institute of Chartered Accountants of India", "https://www.icai.org/rss.xml", "Economic Policy", entity.SourceLegal),
	}
}

// thinkTankSources are research institutions whose analysis frequently
// anticipates policy moves rather than merely reporting them.
func thinkTankSources() []*entity.Source {
	return []*entity.Source{
		src("Observer Research Foundation", "https://www.orfonline.org/feed/?post_type=research", "Policy Analysis", entity.SourceThinkTank),
		src("Centre for Policy Research", "https://cprindia.org/feed/", "Policy Analysis", entity.SourceThinkTank),
		src("Carnegie India", "https://carnegieendowment.org/india/rss", "Policy Analysis", entity.SourceThinkTank),
		src("Brookings India", "https://www.brookings.edu/feed/?post_type=research&taxonomy=region&term=india", "Policy Analysis", entity.SourceThinkTank),
		src("Gateway House", "https://www.gatewayhouse.in/feed/", "Foreign Policy", entity.SourceThinkTank),
		src("ICRIER", "https://icrier.org/feed/", "Economic Policy", entity.SourceThinkTank),
		src("NCAER", "https://www.ncaer.org/feed", "Economic Policy", entity.SourceThinkTank),
		src("Takshashila Institution", "https://takshashila.org.in/feed", "Policy Analysis", entity.SourceThinkTank),
		src("CUTS International", "https://cuts-international.org/feed/", "Economic Policy", entity.SourceThinkTank),
		src("Internet Freedom Foundation", "https://internetfreedom.in/rss", "Technology Policy", entity.SourceThinkTank),
		src("Centre for Science and Environment", "https://www.cseindia.org/rss", "Environmental Policy", entity.SourceThinkTank),
		src("Indian Council for Research on International Economic Relations", "https://icrier.org/category/blogs/feed/", "Foreign Policy", entity.SourceThinkTank),
		src("Data Security Council of India", "https://www.dsci.in/feed", "Technology Policy", entity.SourceThinkTank),
		src("Centre for Social and Economic Progress", "https://csep.org/feed/", "Policy Analysis", entity.SourceThinkTank),
		src("Observer Research Foundation America", "https://www.orfamerica.org/feed/", "Foreign Policy", entity.SourceThinkTank),
	}
}

// newsMediaSources are the general-interest newsrooms whose India, national
// affairs, and opinion desks cover policy as one beat among many.
func newsMediaSources() []*entity.Source {
	return []*entity.Source{
		src("PTI News", "https://www.ptinews.com/home", "Defense & Security", entity.SourceNewsMedia),
		src("Reuters India", "https://www.reuters.com/world/india/", "Defense & Security", entity.SourceNewsMedia),
		src("BBC India", "https://www.bbc.com/news/world/asia/india", "Defense & Security", entity.SourceNewsMedia),
		src("Al Jazeera India", "https://www.aljazeera.com/where/india/", "Defense & Security", entity.SourceNewsMedia),
		src("The Hindu National", "https://www.thehindu.com/news/national/feeder/default.rss", "Governance & Administration", entity.SourceNewsMedia),
		src("The Hindu Opinion", "https://www.thehindu.com/opinion/feeder/default.rss", "Policy Analysis", entity.SourceNewsMedia),
		src("The Hindu Education", "https://www.thehindu.com/education/feeder/default.rss", "Education Policy", entity.SourceNewsMedia),
		src("The Hindu Agriculture", "https://www.thehindu.com/business/agri-business/feeder/default.rss", "Agricultural Policy", entity.SourceNewsMedia),
		src("The Hindu Science", "https://www.thehindu.com/sci-tech/science/feeder/default.rss", "Science & Technology Policy", entity.SourceNewsMedia),
		src("The Hindu International", "https://www.thehindu.com/news/international/feeder/default.rss", "Foreign Policy", entity.SourceNewsMedia),
		src("The Hindu Cities Delhi", "https://www.thehindu.com/news/cities/Delhi/feeder/default.rss", "Urban Development Policy", entity.SourceNewsMedia),
		src("Indian Express India", "https://indianexpress.com/section/india/feed/", "Governance & Administration", entity.SourceNewsMedia),
		src("Indian Express Opinion", "https://indianexpress.com/section/opinion/columns/feed/", "Policy Analysis", entity.SourceNewsMedia),
		src("Indian Express Explained", "https://indianexpress.com/section/explained/feed/", "Policy Analysis", entity.SourceNewsMedia),
		src("Indian Express Political Pulse", "https://indianexpress.com/section/political-pulse/feed/", "Governance & Administration", entity.SourceNewsMedia),
		src("Times of India India", "https://timesofindia.indiatimes.com/rssfeeds/296589292.cms", "Governance & Administration", entity.SourceNewsMedia),
		src("Times of India Education", "https://timesofindia.indiatimes.com/rssfeeds/913168846.cms", "Education Policy", entity.SourceNewsMedia),
		src("Hindustan Times India News", "https://www.hindustantimes.com/feeds/rss/india-news/rssfeed.xml", "Governance & Administration", entity.SourceNewsMedia),
		src("Hindustan Times Cities", "https://www.hindustantimes.com/feeds/rss/cities/rssfeed.xml", "Urban Development Policy", entity.SourceNewsMedia),
		src("The News Minute", "https://www.thenewsminute.com/collection/latest-stories", "Defense & Security", entity.SourceNewsMedia),
		src("The Print India", "https://theprint.in/category/india/feed/", "Governance & Administration", entity.SourceNewsMedia),
		src("The Print Opinion", "https://theprint.in/category/opinion/feed/", "Policy Analysis", entity.SourceNewsMedia),
		src("The Print Diplomacy", "https://theprint.in/category/diplomacy/feed/", "Foreign Policy", entity.SourceNewsMedia),
		src("Scroll India", "https://scroll.in/rss/latest", "Governance & Administration", entity.SourceNewsMedia),
		src("Scroll Opinion", "https://scroll.in/rss/opinion", "Policy Analysis", entity.SourceNewsMedia),
		src("Scroll Politics", "https://scroll.in/rss/politics", "Governance & Administration", entity.SourceNewsMedia),
		src("The Wire Government", "https://thewire.in/government/feed", "Governance & Administration", entity.SourceNewsMedia),
		src("The Wire Law", "https://thewire.in/law/feed", "Constitutional & Legal", entity.SourceNewsMedia),
		src("The Wire Politics", "https://thewire.in/politics/feed", "Governance & Administration", entity.SourceNewsMedia),
		src("Newslaundry", "https://www.newslaundry.com/feed", "Policy Analysis", entity.SourceNewsMedia),
		src("The Quint News", "https://www.thequint.com/feed", "Governance & Administration", entity.SourceNewsMedia),
		src("NDTV India", "https://feeds.feedburner.com/ndtvnews-india-news", "Governance & Administration", entity.SourceNewsMedia),
		src("Outlook India National", "https://www.outlookindia.com/rss/main/national", "Governance & Administration", entity.SourceNewsMedia),
		src("Frontline Magazine", "https://frontline.thehindu.com/rss/feed", "Policy Analysis", entity.SourceNewsMedia),
		src("India Today India", "https://www.indiatoday.in/rss/1206514", "Governance & Administration", entity.SourceNewsMedia),
		src("Firstpost India", "https://www.firstpost.com/rss/india.xml", "Governance & Administration", entity.SourceNewsMedia),
		src("Deccan Herald National", "https://www.deccanherald.com/rss-feed/12", "Governance & Administration", entity.SourceNewsMedia),
		src("Deccan Chronicle Nation", "https://www.deccanchronicle.com/rss_feed/nation.xml", "Governance & Administration", entity.SourceNewsMedia),
		src("The Telegraph India", "https://www.telegraphindia.com/rss.xml", "Governance & Administration", entity.SourceNewsMedia),
		src("News18 India", "https://www.news18.com/rss/india.xml", "Governance & Administration", entity.SourceNewsMedia),
	}
}

// businessSources track economic, financial, and corporate policy through
// the trade and business press.
func businessSources() []*entity.Source {
	return []*entity.Source{
		src("The Hindu Business Line", "https://www.thehindubusinessline.com/economy/feeder/default.rss", "Economic Policy", entity.SourceBusiness),
		src("Business Standard Economy", "https://www.business-standard.com/rss/economy-policy-101.rss", "Economic Policy", entity.SourceBusiness),
		src("Business Standard Finance", "https://www.business-standard.com/rss/finance-103.rss", "Economic Policy", entity.SourceBusiness),
		src("Business Standard Companies", "https://www.business-standard.com/rss/companies-101.rss", "Economic Policy", entity.SourceBusiness),
		src("Economic Times Policy", "https://economictimes.indiatimes.com/news/economy/policy/rssfeeds/1286551326.cms", "Economic Policy", entity.SourceBusiness),
		src("Economic Times Healthcare", "https://health.economictimes.indiatimes.com/rss/topstories", "Healthcare Policy", entity.SourceBusiness),
		src("Economic Times Energy", "https://energy.economictimes.indiatimes.com/rss/topstories", "Energy Policy", entity.SourceBusiness),
		src("Economic Times Tech", "https://tech.economictimes.indiatimes.com/rss/topstories", "Technology Policy", entity.SourceBusiness),
		src("Economic Times Industry", "https://economictimes.indiatimes.com/industry/rssfeeds/13352306.cms", "Economic Policy", entity.SourceBusiness),
		src("Mint Economy", "https://www.livemint.com/rss/economy", "Economic Policy", entity.SourceBusiness),
		src("Mint Politics", "https://www.livemint.com/rss/politics", "Governance & Administration", entity.SourceBusiness),
		src("Mint Opinion", "https://www.livemint.com/rss/opinion", "Policy Analysis", entity.SourceBusiness),
		src("Mint Industry", "https://www.livemint.com/rss/industry", "Economic Policy", entity.SourceBusiness),
		src("Moneycontrol Economy", "https://www.moneycontrol.com/rss/economy.xml", "Economic Policy", entity.SourceBusiness),
		src("Moneycontrol Policy", "https://www.moneycontrol.com/rss/policy.xml", "Economic Policy", entity.SourceBusiness),
		src("Financial Express Economy", "https://www.financialexpress.com/economy/feed/", "Economic Policy", entity.SourceBusiness),
		src("Financial Express Industry", "https://www.financialexpress.com/industry/feed/", "Economic Policy", entity.SourceBusiness),
		src("CNBC-TV18 Policy", "https://www.cnbctv18.com/rss/policy.xml", "Economic Policy", entity.SourceBusiness),
		src("VCCircle Policy", "https://www.vccircle.com/feed", "Economic Policy", entity.SourceBusiness),
		src("Inc42 Policy", "https://inc42.com/feed/", "Technology Policy", entity.SourceBusiness),
	}
}

// sectorSpecialistSources are single-sector outlets and trade publications
// that rarely surface on general news homepages but cover their sector in
// more policy-relevant depth than a generalist beat reporter would.
func sectorSpecialistSources() []*entity.Source {
	return []*entity.Source{
		src("MediaNama", "https://www.medianama.com/feed/", "Technology Policy", entity.SourceNewsMedia),
		src("Entrackr Policy", "https://entrackr.com/feed", "Technology Policy", entity.SourceNewsMedia),
		src("Down To Earth", "https://www.downtoearth.org.in/rss", "Environmental Policy", entity.SourceNewsMedia),
		src("Mongabay India", "https://india.mongabay.com/feed/", "Environmental Policy", entity.SourceNewsMedia),
		src("CarbonCopy Climate Policy", "https://carboncopy.info/feed/", "Environmental Policy", entity.SourceNewsMedia),
		src("India Spend", "https://www.indiaspend.com/feed", "Social Welfare Policy", entity.SourceNewsMedia),
		src("Gaon Connection Agriculture", "https://en.gaonconnection.com/feed/", "Agricultural Policy", entity.SourceNewsMedia),
		src("Rural Voice", "https://www.ruralvoice.in/feed", "Agricultural Policy", entity.SourceNewsMedia),
		src("ETHealthworld", "https://health.economictimes.indiatimes.com/rss/pharma", "Healthcare Policy", entity.SourceNewsMedia),
		src("Express Healthcare", "https://www.expresshealthcare.in/feed/", "Healthcare Policy", entity.SourceNewsMedia),
		src("ETEnergyworld", "https://energy.economictimes.indiatimes.com/rss/power", "Energy Policy", entity.SourceNewsMedia),
		src("Mercom India Energy", "https://www.mercomindia.com/feed", "Energy Policy", entity.SourceNewsMedia),
		src("Education World", "https://www.educationworld.in/feed/", "Education Policy", entity.SourceNewsMedia),
		src("Careers360 Policy", "https://news.careers360.com/feed", "Education Policy", entity.SourceNewsMedia),
		src("Livemint EdTech Policy", "https://www.livemint.com/rss/education", "Education Policy", entity.SourceNewsMedia),
		src("Smart Cities Council India", "https://smartcitiescouncil.com/feed", "Urban Development Policy", entity.SourceNewsMedia),
		src("Urban Update", "https://urbanupdate.in/feed/", "Urban Development Policy", entity.SourceNewsMedia),
		src("StratNews Global Defence", "https://stratnewsglobal.com/feed/", "Defense & Security", entity.SourceNewsMedia),
		src("Livefist Defence", "https://www.livefistdefence.com/feed/", "Defense & Security", entity.SourceNewsMedia),
		src("IDSA Strategic Analysis", "https://www.idsa.in/rss.xml", "Defense & Security", entity.SourceThinkTank),
		src("South Asian Voices Foreign Policy", "https://southasianvoices.org/feed/", "Foreign Policy", entity.SourceThinkTank),
		src("ORF Foreign Policy", "https://www.orfonline.org/feed/?post_type=expert-speak&taxonomy=tag&term=foreign-policy", "Foreign Policy", entity.SourceThinkTank),
		src("Diplomat India Desk", "https://thediplomat.com/tag/india/feed/", "Foreign Policy", entity.SourceNewsMedia),
		src("SpaceNews India Coverage", "https://spacenews.com/tag/india/feed/", "Science & Technology Policy", entity.SourceNewsMedia),
		src("Nature India Policy", "https://www.nature.com/nindia.rss", "Science & Technology Policy", entity.SourceAcademic),
		src("Current Science Policy Notes", "https://www.currentscience.ac.in/rss.xml", "Science & Technology Policy", entity.SourceAcademic),
		src("Social Welfare Digest", "https://socialwelfaredigest.in/feed", "Social Welfare Policy", entity.SourceNewsMedia),
		src("Factly Welfare Schemes", "https://factly.in/feed/", "Social Welfare Policy", entity.SourceNewsMedia),
		src("Governance Now", "https://www.governancenow.com/rss", "Governance & Administration", entity.SourceNewsMedia),
		src("Civil Society Magazine", "https://civilsocietyonline.com/feed/", "Governance & Administration", entity.SourceNewsMedia),
		src("GST Council Secretariat", "https://gstcouncil.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("National Human Rights Commission", "https://nhrc.nic.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("Law Commission of India", "https://lawcommissionofindia.nic.in/rss.xml", "Constitutional & Legal", entity.SourceGovernment),
		src("National Commission for Women", "https://ncw.nic.in/rss.xml", "Social Welfare Policy", entity.SourceGovernment),
		src("National Green Tribunal", "https://greentribunal.gov.in/rss.xml", "Environmental Policy", entity.SourceGovernment),
		src("Delhi Government Policy Cell", "https://delhi.gov.in/rss.xml", "Urban Development Policy", entity.SourceGovernment),
		src("Maharashtra Government Press Room", "https://maharashtra.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Karnataka Government Press Room", "https://karnataka.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Tamil Nadu Government Press Room", "https://tn.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Invest India Policy Updates", "https://www.investindia.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("NABARD Rural Finance", "https://www.nabard.org/rss.xml", "Agricultural Policy", entity.SourceGovernment),
		src("Food Corporation of India", "https://fci.gov.in/rss.xml", "Agricultural Policy", entity.SourceGovernment),
		src("National Disaster Management Authority", "https://ndma.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Press Council of India", "https://presscouncil.nic.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Bureau of Indian Standards", "https://www.bis.gov.in/rss.xml", "Economic Policy", entity.SourceGovernment),
		src("Central Vigilance Commission", "https://cvc.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Staff Selection Commission Notices", "https://ssc.nic.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Union Public Service Commission Notices", "https://upsc.gov.in/rss.xml", "Governance & Administration", entity.SourceGovernment),
		src("Swarajya Policy Desk", "https://swarajyamag.com/feed", "Policy Analysis", entity.SourceNewsMedia),
	}
}

// src is a terse constructor so the tables above stay scannable.
func src(name, url, category string, sourceType entity.SourceType) *entity.Source {
	return &entity.Source{
		Name:            name,
		URL:             url,
		DefaultCategory: category,
		SourceType:      sourceType,
	}
}
